package render3d

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
)

// Near and far clip planes for the standard projection.
const (
	nearPlane = 0.1
	farPlane  = 1000
)

// State identifies the renderer lifecycle state.
type State int

// Renderer lifecycle states. Failed is terminal and reached only from
// Initializing; Disposed is terminal from any state.
const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNoBackend is returned by Init when no graphics backend was
	// provided.
	ErrNoBackend = errors.New("render3d: no graphics backend")

	// ErrNotReady is returned by operations that require a Ready
	// renderer, such as Snapshot.
	ErrNotReady = errors.New("render3d: renderer is not ready")
)

// Renderer draws a Scene from a Camera viewpoint once per frame.
//
// The renderer owns its compiled program and mesh cache; scene and camera
// data are owned by the caller and only read. A Renderer is driven by a
// single-threaded frame loop: Render is synchronous, non-reentrant, and
// must not be called concurrently with itself or Dispose.
type Renderer struct {
	backend Backend
	log     *slog.Logger

	state   State
	program Program
	meshes  *MeshCache

	// Cached drawable size, to skip redundant viewport calls.
	width, height int

	fps   fpsWindow
	stats Stats
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for initialization and compile
// failures. The default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// New creates a Renderer that draws through the given backend.
// Call Init once before the first Render.
func New(backend Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend: backend,
		log:     slog.Default(),
		meshes:  NewMeshCache(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init compiles the standard program and transitions the renderer to
// Ready. A missing backend or a failed compile/link transitions to Failed
// and surfaces the error exactly once; the renderer is not retried.
func (r *Renderer) Init() error {
	if r.state != StateUninitialized {
		return fmt.Errorf("render3d: init called in state %s", r.state)
	}
	r.state = StateInitializing

	if r.backend == nil {
		r.state = StateFailed
		return ErrNoBackend
	}

	program, err := r.backend.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		r.state = StateFailed
		r.log.Error("standard program failed to build", "error", err)
		return fmt.Errorf("render3d: compile standard program: %w", err)
	}
	if program == nil {
		// Not fatal: frames render as no-ops until a program exists.
		r.log.Warn("backend returned no program; frames will be skipped")
	}

	r.program = program
	r.state = StateReady
	return nil
}

// State returns the current lifecycle state.
func (r *Renderer) State() State {
	return r.state
}

// Render draws one frame at the given absolute time in milliseconds.
// Outside the Ready state it is a no-op. No error is returned and none
// escapes: per-object problems degrade to documented fallbacks (unknown
// geometry becomes a box, unknown animation is ignored) and an absent
// program skips the frame's draw calls entirely.
func (r *Renderer) Render(scene *Scene, camera Camera, timeMs float64) {
	if r.state != StateReady || scene == nil {
		return
	}

	width, height := r.backend.DrawableSize()
	if width != r.width || height != r.height {
		r.backend.Viewport(width, height)
		r.width, r.height = width, height
	}

	r.backend.Clear(scene.Ambient)

	frame := Stats{FPS: r.fps.tick(timeMs)}
	if r.program == nil {
		r.stats = frame
		return
	}

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	fogNear, fogFar := scene.Fog.Near, scene.Fog.Far
	if fogFar <= fogNear {
		// No fog configured: push the fog band past the far plane.
		fogNear, fogFar = farPlane, 2*farPlane
	}

	p := r.program
	p.Bind()
	p.SetUniform("uProjection", Mat4Uniform(Perspective(camera.FOV, aspect, nearPlane, farPlane)))
	p.SetUniform("uView", Mat4Uniform(LookAt(camera.Position, Vector3{}, Vec3(0, 1, 0))))
	p.SetUniform("uLightDir", Vec3Uniform(scene.Light.Direction.Normalize()))
	p.SetUniform("uLightColor", ColorUniform(scaleColor(scene.Light.Color, scene.Light.Intensity)))
	p.SetUniform("uAmbientColor", ColorUniform(scene.Ambient))
	p.SetUniform("uCameraPos", Vec3Uniform(camera.Position))
	p.SetUniform("uTime", FloatUniform(float32(timeMs*0.001)))
	p.SetUniform("uFogColor", ColorUniform(scene.Fog.Color))
	p.SetUniform("uFogNear", FloatUniform(fogNear))
	p.SetUniform("uFogFar", FloatUniform(fogFar))

	for i := range scene.Objects {
		obj := &scene.Objects[i]

		transform := Animate(obj.Transform, obj.Animation, timeMs)
		p.SetUniform("uModel", Mat4Uniform(ModelMatrix(transform)))
		p.SetUniform("uColor", ColorUniform(obj.Material.Color))
		p.SetUniform("uEmission", ColorUniform(obj.Material.Emission))
		p.SetUniform("uMetallic", FloatUniform(obj.Material.Metallic))
		p.SetUniform("uRoughness", FloatUniform(obj.Material.Roughness))

		mesh := r.meshes.Get(obj.Geometry)
		r.backend.DrawMesh(mesh)

		frame.Triangles += mesh.TriangleCount
		frame.DrawCalls++
	}

	r.stats = frame
}

// Stats returns the counters published by the most recent frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Snapshot reads back the most recently rendered frame, for scene
// thumbnails. Only valid while the renderer is Ready.
func (r *Renderer) Snapshot() (*image.RGBA, error) {
	if r.state != StateReady {
		return nil, ErrNotReady
	}
	return r.backend.ReadFrame()
}

// Dispose releases the compiled program and the mesh cache. After Dispose
// the renderer is terminal: Render is a permanent no-op and the instance
// cannot be reinitialized. The backend itself is owned by whoever created
// it and is not released here.
func (r *Renderer) Dispose() {
	if r.state == StateDisposed {
		return
	}
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	r.meshes.Clear()
	r.state = StateDisposed
}

func scaleColor(c Color, s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}
