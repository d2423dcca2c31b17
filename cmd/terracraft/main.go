package main

import (
	"fmt"
	"runtime"
	"time"

	"terracraft/internal/config"
	"terracraft/internal/game"
	"terracraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Window setup
	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	session, err := game.NewSession(window)
	if err != nil {
		panic(err)
	}
	defer session.Cleanup()

	// Pause state
	paused := false

	// Setup input handlers
	setupInputHandlers(window, session, &paused)

	// Main game loop
	runGameLoop(window, session, &paused)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(900, 600, "terracraft", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, s *game.Session, paused *bool) {
	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !*paused {
			s.Player.HandleMouseMovement(w, xpos, ypos)
		}
	})

	// Mouse button callback (game interactions disabled when paused)
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if !*paused {
			s.HandleMouseButton(button, action)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyV && action == glfw.Press {
			s.HUD.Toggle()
		}
		if key == glfw.KeyEscape && action == glfw.Press {
			*paused = !*paused
			if *paused {
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				s.Player.FirstMouse = true
			}
		}
		if key == glfw.KeyQ && action == glfw.Press && *paused {
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		s.Renderer.UpdateViewport(width, height)
	})
}

func runGameLoop(window *glfw.Window, s *game.Session, paused *bool) {
	limiter := game.NewFPSLimiter()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if !*paused {
			s.Update(dt)
		}

		s.Render(dt)

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()

		// Flag frames that blow the FPS budget before the limiter pads
		// the remainder.
		if limit := config.GetFPSLimit(); limit > 0 {
			if frameDur := time.Since(now); frameDur > time.Second/time.Duration(limit) {
				fmt.Printf("Frame took too long: %.2fms\n", float64(frameDur.Nanoseconds())/1e6)
			}
		}

		limiter.Wait()
	}
}
