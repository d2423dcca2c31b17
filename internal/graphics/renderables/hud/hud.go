package hud

import (
	"fmt"
	"strings"
	"time"

	"terracraft/internal/graphics"
	"terracraft/internal/graphics/renderer"
	"terracraft/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// HUD draws the debug overlay: frame rate, camera position, chunk counts and
// the per-frame profiling breakdown. Toggled at runtime; hidden by default
// it still counts frames so the FPS value is warm when it comes up.
type HUD struct {
	fontAtlas    *graphics.FontAtlasInfo
	fontRenderer *graphics.FontRenderer
	width        int
	height       int

	visible bool

	// Extra stat lines supplied by the game session (chunk counts, job
	// slot state). Called once per rendered frame.
	statsFn func() []string

	frameCount  int
	currentFPS  int
	lastFPSTime time.Time
}

// NewHUD creates the overlay. statsFn may be nil.
func NewHUD(width, height int, statsFn func() []string) *HUD {
	return &HUD{
		width:       width,
		height:      height,
		statsFn:     statsFn,
		lastFPSTime: time.Now(),
	}
}

// Init bakes the font atlas and compiles the text shader
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas()
	if err != nil {
		return fmt.Errorf("build font atlas: %w", err)
	}
	fr, err := graphics.NewFontRenderer(atlas, h.width, h.height)
	if err != nil {
		return fmt.Errorf("font renderer: %w", err)
	}
	h.fontAtlas = atlas
	h.fontRenderer = fr
	return nil
}

// Toggle flips overlay visibility
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the overlay is currently shown
func (h *HUD) Visible() bool {
	return h.visible
}

// Render draws the overlay text
func (h *HUD) Render(ctx renderer.RenderContext) {
	h.tickFPS()
	if !h.visible {
		return
	}
	defer profiling.Track("hud.Render")()

	pos := ctx.Player.Position
	lines := []string{
		fmt.Sprintf("FPS: %d", h.currentFPS),
		fmt.Sprintf("Pos: %.1f, %.1f, %.1f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("Yaw: %.1f Pitch: %.1f", ctx.Player.CamYaw, ctx.Player.CamPitch),
	}
	if h.statsFn != nil {
		lines = append(lines, h.statsFn()...)
	}
	// Event-pump time tracked earlier this frame; the swap that follows
	// the render is not in yet.
	if d := profiling.SumWithPrefix("glfw."); d > 0 {
		lines = append(lines, fmt.Sprintf("GLFW: %.2fms", float64(d.Microseconds())/1000.0))
	}
	if top := profiling.TopN(6); top != "" {
		for _, part := range strings.Split(top, ", ") {
			lines = append(lines, part)
		}
	}

	h.fontRenderer.RenderLines(lines, 10, 24, 16, 1.0, mgl32.Vec3{1, 1, 1})
}

func (h *HUD) tickFPS() {
	h.frameCount++
	if now := time.Now(); now.Sub(h.lastFPSTime) >= time.Second {
		h.currentFPS = h.frameCount
		h.frameCount = 0
		h.lastFPSTime = now
	}
}

// Dispose releases the font resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

// SetViewport updates the text projection after a resize
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}
