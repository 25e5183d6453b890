package opengl

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns a GLFW window, its OpenGL context, and the frame loop that
// drives a renderer. Create it from the main goroutine with
// runtime.LockOSThread in effect.
type Window struct {
	win     *glfw.Window
	backend *Backend
	stopped bool
}

// NewWindow initializes GLFW and creates a window with an OpenGL 4.1 core
// context, vsync enabled. The framebuffer is sized in device pixels, so
// high-DPI displays get a larger drawable than the requested window size.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{win: win, backend: New(win)}, nil
}

// Backend returns the render3d backend bound to this window's context.
func (w *Window) Backend() *Backend {
	return w.backend
}

// GLFW returns the underlying window, for input callbacks.
func (w *Window) GLFW() *glfw.Window {
	return w.win
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Run drives frame once per display refresh until the window closes or
// Stop is called. frame receives the time since Run started, in
// milliseconds. The loop is synchronous on the calling goroutine and Run
// returns before any teardown can happen, so a stopped loop never ticks a
// disposed renderer.
func (w *Window) Run(frame func(timeMs float64)) {
	start := time.Now()
	for !w.stopped && !w.win.ShouldClose() {
		glfw.PollEvents()
		frame(float64(time.Since(start)) / float64(time.Millisecond))
		w.win.SwapBuffers()
	}
}

// Stop ends the loop after the in-flight frame completes. Safe to call
// from within the frame callback.
func (w *Window) Stop() {
	w.stopped = true
}

// Close destroys the window and terminates GLFW. Only call after Run has
// returned and the renderer using this window's backend is disposed.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
