package render3d_test

import (
	"bytes"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/moodscape/render3d"
)

// mockProgram records bindings and uniform writes.
type mockProgram struct {
	binds    int
	uniforms map[string]render3d.Uniform
	models   []render3d.Mat4 // uModel value per draw, in order
	released bool
}

func (p *mockProgram) Bind() { p.binds++ }

func (p *mockProgram) SetUniform(name string, u render3d.Uniform) {
	p.uniforms[name] = u
	if name == "uModel" {
		p.models = append(p.models, u.Mat4)
	}
}

func (p *mockProgram) Release() { p.released = true }

// mockBackend is a recording render3d.Backend with no graphics API.
type mockBackend struct {
	width, height int

	compileErr error
	noProgram  bool
	program    *mockProgram

	clears    []render3d.Color
	viewports int
	draws     []*render3d.Mesh
}

func newMockBackend() *mockBackend {
	return &mockBackend{width: 800, height: 600}
}

func (b *mockBackend) CompileProgram(vertexSrc, fragmentSrc string) (render3d.Program, error) {
	if b.compileErr != nil {
		return nil, b.compileErr
	}
	if b.noProgram {
		return nil, nil
	}
	b.program = &mockProgram{uniforms: make(map[string]render3d.Uniform)}
	return b.program, nil
}

func (b *mockBackend) DrawableSize() (int, int) { return b.width, b.height }

func (b *mockBackend) Viewport(width, height int) { b.viewports++ }

func (b *mockBackend) Clear(c render3d.Color) { b.clears = append(b.clears, c) }

func (b *mockBackend) DrawMesh(m *render3d.Mesh) { b.draws = append(b.draws, m) }

func (b *mockBackend) ReadFrame() (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, b.width, b.height)), nil
}

func testScene(objects ...render3d.Object) *render3d.Scene {
	return &render3d.Scene{
		Ambient: render3d.RGB(0.1, 0.1, 0.2),
		Light: render3d.DirectionalLight{
			Color:     render3d.RGB(1, 1, 1),
			Intensity: 1,
			Direction: render3d.Vec3(0, -1, 0),
		},
		Objects: objects,
	}
}

func testCamera() render3d.Camera {
	return render3d.Camera{Position: render3d.Vec3(0, 2, 6), FOV: 60}
}

func boxObject(id string) render3d.Object {
	return render3d.Object{
		ID:        id,
		Transform: render3d.Transform{Scale: render3d.Vec3(1, 1, 1)},
		Geometry:  render3d.Geometry{Type: render3d.GeometryBox},
	}
}

func TestInitNoBackend(t *testing.T) {
	r := render3d.New(nil)
	err := r.Init()
	if !errors.Is(err, render3d.ErrNoBackend) {
		t.Fatalf("expected ErrNoBackend, got %v", err)
	}
	if r.State() != render3d.StateFailed {
		t.Errorf("expected Failed state, got %s", r.State())
	}
}

func TestInitCompileFailure(t *testing.T) {
	backend := newMockBackend()
	backend.compileErr = errors.New("link error")

	r := render3d.New(backend)
	err := r.Init()
	if err == nil {
		t.Fatal("expected an error from Init")
	}
	if r.State() != render3d.StateFailed {
		t.Errorf("expected Failed state, got %s", r.State())
	}

	// A failed renderer never draws and never panics.
	r.Render(testScene(boxObject("a")), testCamera(), 16)
	if len(backend.draws) != 0 {
		t.Errorf("expected no draws, got %d", len(backend.draws))
	}
}

func TestInitTwice(t *testing.T) {
	r := render3d.New(newMockBackend())
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := r.Init(); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestRenderBeforeInit(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)

	r.Render(testScene(boxObject("a")), testCamera(), 0)
	if len(backend.clears) != 0 || len(backend.draws) != 0 {
		t.Error("render before init must be a no-op")
	}
}

func TestRenderAbsentProgram(t *testing.T) {
	backend := newMockBackend()
	backend.noProgram = true

	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if r.State() != render3d.StateReady {
		t.Fatalf("expected Ready state, got %s", r.State())
	}

	// The frame clears but issues no draw calls and is not an error.
	r.Render(testScene(boxObject("a"), boxObject("b")), testCamera(), 16)

	if len(backend.clears) != 1 {
		t.Errorf("expected 1 clear, got %d", len(backend.clears))
	}
	if len(backend.draws) != 0 {
		t.Errorf("expected 0 draws, got %d", len(backend.draws))
	}
	if stats := r.Stats(); stats.DrawCalls != 0 || stats.Triangles != 0 {
		t.Errorf("expected zero draw stats, got %+v", stats)
	}
}

func TestRenderDrawsEachObject(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	scene := testScene(
		boxObject("a"),
		render3d.Object{
			ID:        "floor",
			Transform: render3d.Transform{Scale: render3d.Vec3(1, 1, 1)},
			Geometry:  render3d.Geometry{Type: render3d.GeometryPlane},
		},
		render3d.Object{
			ID:        "mystery",
			Transform: render3d.Transform{Scale: render3d.Vec3(1, 1, 1)},
			Geometry:  render3d.Geometry{Type: "nonsense"},
		},
	)
	r.Render(scene, testCamera(), 16)

	if len(backend.draws) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(backend.draws))
	}
	stats := r.Stats()
	if stats.DrawCalls != 3 {
		t.Errorf("expected 3 draw calls, got %d", stats.DrawCalls)
	}
	// box (12) + plane (2) + unknown-as-box (12)
	if stats.Triangles != 26 {
		t.Errorf("expected 26 triangles, got %d", stats.Triangles)
	}
	if backend.program.binds != 1 {
		t.Errorf("expected 1 program bind, got %d", backend.program.binds)
	}
}

func TestRenderGlobalUniforms(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	r.Render(testScene(boxObject("a")), testCamera(), 2500)

	for _, name := range []string{
		"uProjection", "uView", "uLightDir", "uLightColor",
		"uAmbientColor", "uCameraPos", "uTime",
	} {
		if _, ok := backend.program.uniforms[name]; !ok {
			t.Errorf("global uniform %s was not set", name)
		}
	}

	// Time is passed in seconds.
	if got := backend.program.uniforms["uTime"].Float; got != 2.5 {
		t.Errorf("expected uTime 2.5, got %v", got)
	}
	if kind := backend.program.uniforms["uProjection"].Kind; kind != render3d.UniformMat4 {
		t.Errorf("expected uProjection to be a mat4, got kind %d", kind)
	}
}

func TestClearUsesAmbientColor(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	scene := testScene()
	r.Render(scene, testCamera(), 0)

	if len(backend.clears) != 1 || backend.clears[0] != scene.Ambient {
		t.Errorf("expected clear to ambient %+v, got %+v", scene.Ambient, backend.clears)
	}
}

func TestViewportOnlyOnResize(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	scene := testScene()
	r.Render(scene, testCamera(), 0)
	r.Render(scene, testCamera(), 16)
	if backend.viewports != 1 {
		t.Errorf("expected 1 viewport call for a stable surface, got %d", backend.viewports)
	}

	backend.width = 1600
	backend.height = 1200
	r.Render(scene, testCamera(), 33)
	if backend.viewports != 2 {
		t.Errorf("expected viewport call after resize, got %d", backend.viewports)
	}
}

func TestFPSRollingWindow(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	scene := testScene()
	for i := 0; i < 10; i++ {
		r.Render(scene, testCamera(), float64(i*100))
	}
	if got := r.Stats().FPS; got != 10 {
		t.Errorf("expected 10 frames in window, got %d", got)
	}

	// A late frame prunes everything older than one second.
	r.Render(scene, testCamera(), 5000)
	if got := r.Stats().FPS; got != 1 {
		t.Errorf("expected 1 frame in window after gap, got %d", got)
	}
}

func TestPulseModelMatrixDeterministic(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	obj := boxObject("pulse")
	obj.Animation = &render3d.Animation{
		Type:      render3d.AnimationPulse,
		Speed:     float32(math.Pi),
		Amplitude: 0.5,
	}
	scene := testScene(obj)

	// sin(T * speed * 0.001) = sin(pi) = 0 at T = 1000, so the model
	// matrix matches the one at T = 0.
	r.Render(scene, testCamera(), 0)
	r.Render(scene, testCamera(), 1000)

	models := backend.program.models
	if len(models) != 2 {
		t.Fatalf("expected 2 recorded model matrices, got %d", len(models))
	}
	for i := range models[0] {
		diff := float64(models[0][i] - models[1][i])
		if math.Abs(diff) > 1e-5 {
			t.Fatalf("model matrices differ at %d: %v vs %v", i, models[0][i], models[1][i])
		}
	}
}

func TestSceneNotMutatedByRender(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	obj := boxObject("spinner")
	obj.Animation = &render3d.Animation{Type: render3d.AnimationRotate, Speed: 3}
	scene := testScene(obj)
	before := scene.Objects[0].Transform

	r.Render(scene, testCamera(), 4000)

	if scene.Objects[0].Transform != before {
		t.Error("render mutated the object's base transform")
	}
}

func TestDispose(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	r.Dispose()
	if r.State() != render3d.StateDisposed {
		t.Errorf("expected Disposed state, got %s", r.State())
	}
	if !backend.program.released {
		t.Error("dispose must release the compiled program")
	}

	// A tick after teardown must not execute any drawing.
	r.Render(testScene(boxObject("a")), testCamera(), 16)
	if len(backend.draws) != 0 || len(backend.clears) != 0 {
		t.Error("render after dispose must be a no-op")
	}

	r.Dispose() // idempotent
}

func TestSnapshot(t *testing.T) {
	backend := newMockBackend()
	r := render3d.New(backend)

	if _, err := r.Snapshot(); !errors.Is(err, render3d.ErrNotReady) {
		t.Errorf("expected ErrNotReady before init, got %v", err)
	}

	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	frame, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	var buf bytes.Buffer
	if err := render3d.EncodeWebP(&buf, frame); err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty WebP output")
	}
}
