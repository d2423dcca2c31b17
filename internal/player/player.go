package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FlySpeed         = 24.0 // world units per second
	FastMultiplier   = 4.0
	MouseSensitivity = 0.1
)

// Player is a free-flying camera: position plus yaw/pitch orientation.
// There is no collision or gravity; movement is direct translation along
// the view axes.
type Player struct {
	Position mgl32.Vec3
	CamYaw   float64 // degrees
	CamPitch float64 // degrees

	FirstMouse bool
	LastMouseX float64
	LastMouseY float64
}

// NewPlayer creates a player at the given position looking toward -Z.
func NewPlayer(position mgl32.Vec3) *Player {
	return &Player{
		Position:   position,
		CamYaw:     -90.0,
		FirstMouse: true,
	}
}

// Update applies one frame of keyboard movement. WASD moves along the
// horizontal view direction, space and left shift move vertically, and
// left control engages fast flight.
func (p *Player) Update(dt float64, w *glfw.Window) {
	speed := float32(FlySpeed * dt)
	if w.GetKey(glfw.KeyLeftControl) == glfw.Press {
		speed *= FastMultiplier
	}

	front := p.horizontalFront()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	if w.GetKey(glfw.KeyW) == glfw.Press {
		p.Position = p.Position.Add(front.Mul(speed))
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		p.Position = p.Position.Sub(front.Mul(speed))
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		p.Position = p.Position.Add(right.Mul(speed))
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		p.Position = p.Position.Sub(right.Mul(speed))
	}
	if w.GetKey(glfw.KeySpace) == glfw.Press {
		p.Position = p.Position.Add(mgl32.Vec3{0, speed, 0})
	}
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press {
		p.Position = p.Position.Sub(mgl32.Vec3{0, speed, 0})
	}
}

func (p *Player) HandleMouseMovement(w *glfw.Window, xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.CamYaw += xoffset * MouseSensitivity
	p.CamPitch += yoffset * MouseSensitivity

	// Constrain pitch
	if p.CamPitch > 89.0 {
		p.CamPitch = 89.0
	}
	if p.CamPitch < -89.0 {
		p.CamPitch = -89.0
	}
}

// GetFrontVector returns the unit view direction.
func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// horizontalFront is the view direction flattened onto the XZ plane, so
// forward motion does not depend on pitch.
func (p *Player) horizontalFront() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	return mgl32.Vec3{
		float32(math.Cos(float64(y))),
		0,
		float32(math.Sin(float64(y))),
	}.Normalize()
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	front := p.GetFrontVector()
	target := p.Position.Add(front)
	return mgl32.LookAtV(p.Position, target, mgl32.Vec3{0, 1, 0})
}
