// Example renders a small stylized scene: a fogged twilight environment
// with a ground plane, animated boxes and spheres, and a glowing orb.
// Drag to orbit, shift+drag to pan, scroll to zoom, WASD/QE to move.
// Live performance stats are shown in the window title.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/moodscape/render3d"
	"github.com/moodscape/render3d/backend/opengl"
)

const (
	windowWidth  = 960
	windowHeight = 640
	windowTitle  = "render3d example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	renderer := render3d.New(window.Backend(), render3d.WithLogger(slog.Default()))
	if err := renderer.Init(); err != nil {
		return err
	}
	defer renderer.Dispose()

	scene := demoScene()
	camera := &render3d.Camera{
		Position: render3d.Vec3(5, 3, 8),
		FOV:      60,
	}
	controller := opengl.NewCameraController(window.GLFW(), camera)

	lastMs := 0.0
	frames := 0
	window.Run(func(timeMs float64) {
		controller.Update(float32((timeMs - lastMs) * 0.001))
		lastMs = timeMs

		renderer.Render(scene, *camera, timeMs)

		frames++
		if frames%30 == 0 {
			stats := renderer.Stats()
			window.SetTitle(fmt.Sprintf("%s | %d fps, %d triangles, %d draws",
				windowTitle, stats.FPS, stats.Triangles, stats.DrawCalls))
		}
	})
	return nil
}

func demoScene() *render3d.Scene {
	ground := render3d.Object{
		ID: "ground",
		Transform: render3d.Transform{
			Rotation: render3d.Vec3(-1.5708, 0, 0), // lay the plane flat
			Scale:    render3d.Vec3(1, 1, 1),
		},
		Material: render3d.Material{
			Color:     render3d.RGB(0.18, 0.24, 0.2),
			Roughness: 0.9,
		},
		Geometry: render3d.Geometry{
			Type:   render3d.GeometryPlane,
			Params: map[string]float32{"width": 24, "height": 24},
		},
	}

	orb := render3d.Object{
		ID: "orb",
		Transform: render3d.Transform{
			Position: render3d.Vec3(0, 2.2, 0),
			Scale:    render3d.Vec3(1, 1, 1),
		},
		Material: render3d.Material{
			Color:     render3d.RGB(0.9, 0.85, 0.6),
			Roughness: 0.3,
			Emission:  render3d.RGB(0.8, 0.6, 0.2),
		},
		Geometry: render3d.Geometry{
			Type:   render3d.GeometrySphere,
			Params: map[string]float32{"radius": 0.7, "widthSegments": 24, "heightSegments": 16},
		},
		Animation: &render3d.Animation{Type: render3d.AnimationFloat, Speed: 1.2, Amplitude: 0.3},
	}

	scene := &render3d.Scene{
		Ambient: render3d.RGB(0.12, 0.1, 0.18),
		Light: render3d.DirectionalLight{
			Color:     render3d.RGB(1, 0.92, 0.8),
			Intensity: 0.9,
			Direction: render3d.Vec3(-0.4, -1, -0.3),
		},
		Fog: render3d.Fog{
			Color: render3d.RGB(0.12, 0.1, 0.18),
			Near:  12,
			Far:   30,
		},
		Objects: []render3d.Object{ground, orb},
	}

	// A ring of slowly turning, pulsing blocks around the orb.
	positions := []render3d.Vector3{
		render3d.Vec3(3, 0.5, 0),
		render3d.Vec3(-3, 0.5, 0),
		render3d.Vec3(0, 0.5, 3),
		render3d.Vec3(0, 0.5, -3),
	}
	colors := []render3d.Color{
		render3d.RGB(0.7, 0.3, 0.3),
		render3d.RGB(0.3, 0.6, 0.7),
		render3d.RGB(0.4, 0.7, 0.4),
		render3d.RGB(0.7, 0.6, 0.3),
	}
	anims := []render3d.Animation{
		{Type: render3d.AnimationRotate, Speed: 0.8},
		{Type: render3d.AnimationPulse, Speed: 1.5, Amplitude: 0.12},
		{Type: render3d.AnimationRotate, Speed: -0.5},
		{Type: render3d.AnimationFloat, Speed: 0.9, Amplitude: 0.2},
	}
	for i := range positions {
		anim := anims[i]
		scene.Objects = append(scene.Objects, render3d.Object{
			ID: fmt.Sprintf("block-%d", i),
			Transform: render3d.Transform{
				Position: positions[i],
				Scale:    render3d.Vec3(1, 1, 1),
			},
			Material: render3d.Material{
				Color:     colors[i],
				Metallic:  0.4,
				Roughness: 0.6,
			},
			Geometry: render3d.Geometry{
				Type:   render3d.GeometryBox,
				Params: map[string]float32{"width": 1, "height": 1, "depth": 1},
			},
			Animation:   &anim,
			Interactive: true,
		})
	}
	return scene
}
