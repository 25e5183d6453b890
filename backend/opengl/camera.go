package opengl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/moodscape/render3d"
)

// Camera distance and movement limits.
const (
	MinDistance = 1.0
	MaxDistance = 20.0

	minHeight = 0.5
	maxPitch  = 1.5

	rotateSpeed = 0.01
	panSpeed    = 0.01
	moveSpeed   = 4.0
)

// CameraController mutates a render3d.Camera from GLFW input: dragging
// orbits the camera around the scene origin, shift+drag pans, the scroll
// wheel zooms within [MinDistance, MaxDistance], and WASD/QE move the
// camera directly with its height clamped above the ground plane.
//
// The controller is an input collaborator; the renderer only ever reads
// the resulting camera each frame.
type CameraController struct {
	window *glfw.Window
	camera *render3d.Camera

	yaw      float32
	pitch    float32
	distance float32

	dragging     bool
	lastX, lastY float64
}

// NewCameraController attaches mouse callbacks to the window and returns
// a controller driving the given camera. Call Update once per frame for
// keyboard movement.
func NewCameraController(window *glfw.Window, camera *render3d.Camera) *CameraController {
	c := &CameraController{window: window, camera: camera}
	c.syncFromCamera()

	window.SetMouseButtonCallback(c.mouseButton)
	window.SetCursorPosCallback(c.cursorPos)
	window.SetScrollCallback(c.scroll)
	return c
}

// Update applies WASD/QE movement for the elapsed frame time in seconds.
func (c *CameraController) Update(dt float32) {
	forward := c.camera.Position.Scale(-1).Normalize()
	right := forward.Cross(render3d.Vec3(0, 1, 0)).Normalize()

	var delta render3d.Vector3
	if c.keyDown(glfw.KeyW) {
		delta = delta.Add(forward)
	}
	if c.keyDown(glfw.KeyS) {
		delta = delta.Sub(forward)
	}
	if c.keyDown(glfw.KeyA) {
		delta = delta.Sub(right)
	}
	if c.keyDown(glfw.KeyD) {
		delta = delta.Add(right)
	}
	if c.keyDown(glfw.KeyE) {
		delta = delta.Add(render3d.Vec3(0, 1, 0))
	}
	if c.keyDown(glfw.KeyQ) {
		delta = delta.Sub(render3d.Vec3(0, 1, 0))
	}
	if delta == (render3d.Vector3{}) {
		return
	}

	pos := c.camera.Position.Add(delta.Scale(moveSpeed * dt))
	if pos.Y < minHeight {
		pos.Y = minHeight
	}
	c.camera.Position = pos
	c.syncFromCamera()
}

func (c *CameraController) keyDown(key glfw.Key) bool {
	return c.window.GetKey(key) == glfw.Press
}

func (c *CameraController) mouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		c.dragging = true
		c.lastX, c.lastY = w.GetCursorPos()
	case glfw.Release:
		c.dragging = false
	}
}

func (c *CameraController) cursorPos(w *glfw.Window, x, y float64) {
	if !c.dragging {
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y

	if c.shiftDown() {
		// Pan: slide the camera within its current view plane.
		pos := c.camera.Position
		pos.X -= dx * panSpeed
		pos.Y += dy * panSpeed
		if pos.Y < minHeight {
			pos.Y = minHeight
		}
		c.camera.Position = pos
		c.syncFromCamera()
		return
	}

	c.yaw += dx * rotateSpeed
	c.pitch = clamp(c.pitch+dy*rotateSpeed, -maxPitch, maxPitch)
	c.apply()
}

func (c *CameraController) scroll(w *glfw.Window, xoff, yoff float64) {
	c.distance = clamp(c.distance-float32(yoff), MinDistance, MaxDistance)
	c.apply()
}

func (c *CameraController) shiftDown() bool {
	return c.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		c.window.GetKey(glfw.KeyRightShift) == glfw.Press
}

// apply recomputes the camera pose from the orbit state.
func (c *CameraController) apply() {
	cosPitch := math32.Cos(c.pitch)
	c.camera.Position = render3d.Vec3(
		c.distance*math32.Sin(c.yaw)*cosPitch,
		c.distance*math32.Sin(c.pitch),
		c.distance*math32.Cos(c.yaw)*cosPitch,
	)
	c.camera.Rotation = render3d.Vec3(c.pitch, c.yaw, 0)
}

// syncFromCamera rebuilds the orbit state from the camera position, so
// direct movement and orbiting stay consistent.
func (c *CameraController) syncFromCamera() {
	pos := c.camera.Position
	c.distance = clamp(pos.Length(), MinDistance, MaxDistance)
	c.yaw = math32.Atan2(pos.X, pos.Z)
	if l := pos.Length(); l > 0 {
		c.pitch = math32.Asin(pos.Y / l)
	}
	c.camera.Rotation = render3d.Vec3(c.pitch, c.yaw, 0)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
