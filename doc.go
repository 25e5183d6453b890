/*
Package render3d is a small real-time 3D renderer for stylized decorative
scenes, designed to be embedded inside a host application panel.

The package owns the scene/camera data model, hand-built projection, view,
and model matrices, primitive mesh generation with memoization, pure
procedural animation, and the per-frame render protocol. The graphics API
is abstracted behind the Backend interface; backend/opengl provides an
OpenGL 4.1 implementation driven by a GLFW window.

# Quick Start

	window, err := opengl.NewWindow(960, 640, "scene")
	if err != nil {
	    log.Fatal(err)
	}
	defer window.Close()

	renderer := render3d.New(window.Backend())
	if err := renderer.Init(); err != nil {
	    log.Fatal(err)
	}
	defer renderer.Dispose()

	scene := &render3d.Scene{} // objects, light, fog
	camera := render3d.Camera{Position: render3d.Vec3(4, 3, 8), FOV: 60}

	window.Run(func(timeMs float64) {
	    renderer.Render(scene, camera, timeMs)
	})

# Frame protocol

Render is called once per frame tick with the scene, the camera, and the
absolute time in milliseconds. It resizes the viewport if the drawable
surface changed, clears to the scene ambient color, sets global uniforms,
and then issues one draw call per object: the object's animation is
evaluated into a derived transform, the model matrix is composed, material
uniforms are set, and the cached mesh is drawn. Performance counters for
the frame are published through Stats.

Scene and camera data are owned by the caller and never mutated by the
renderer; animation returns derived transforms instead of touching the
source objects. All steady-state failures degrade to documented fallbacks
(unknown geometry renders as a box, unknown animation is ignored, an
absent program skips the frame) rather than surfacing errors per frame.
*/
package render3d
