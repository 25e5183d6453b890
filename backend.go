package render3d

import "image"

// Backend abstracts the graphics API behind the Renderer. The OpenGL
// implementation lives in backend/opengl; tests inject a recording mock.
// All methods are called from the render goroutine only.
type Backend interface {
	// CompileProgram compiles and links a vertex+fragment program.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)

	// DrawableSize returns the current drawable surface size in device
	// pixels (window size scaled by the device pixel ratio).
	DrawableSize() (width, height int)

	// Viewport sets the rendering viewport in device pixels.
	Viewport(width, height int)

	// Clear clears the color and depth buffers to the given color.
	Clear(c Color)

	// DrawMesh uploads the mesh data and issues a single draw call with
	// the currently bound program.
	DrawMesh(m *Mesh)

	// ReadFrame reads back the current framebuffer contents, top row
	// first.
	ReadFrame() (*image.RGBA, error)
}

// Program is a compiled and linked GPU program.
type Program interface {
	// Bind makes the program current for subsequent uniforms and draws.
	Bind()
	// SetUniform sets a named uniform. Unknown names are ignored.
	SetUniform(name string, u Uniform)
	// Release frees the program.
	Release()
}

// UniformKind tags which field of a Uniform carries the payload.
type UniformKind int

// Uniform payload kinds.
const (
	UniformFloat UniformKind = iota
	UniformVec2
	UniformVec3
	UniformMat4
)

// Uniform is an explicitly tagged uniform value. The tag removes any need
// for a backend to sniff value shapes when dispatching to the API.
type Uniform struct {
	Kind  UniformKind
	Float float32
	Vec2  [2]float32
	Vec3  [3]float32
	Mat4  Mat4
}

// FloatUniform returns a float-valued Uniform.
func FloatUniform(v float32) Uniform {
	return Uniform{Kind: UniformFloat, Float: v}
}

// Vec2Uniform returns a vec2-valued Uniform.
func Vec2Uniform(x, y float32) Uniform {
	return Uniform{Kind: UniformVec2, Vec2: [2]float32{x, y}}
}

// Vec3Uniform returns a vec3-valued Uniform from a vector.
func Vec3Uniform(v Vector3) Uniform {
	return Uniform{Kind: UniformVec3, Vec3: [3]float32{v.X, v.Y, v.Z}}
}

// ColorUniform returns a vec3-valued Uniform from a color.
func ColorUniform(c Color) Uniform {
	return Uniform{Kind: UniformVec3, Vec3: [3]float32{c.R, c.G, c.B}}
}

// Mat4Uniform returns a mat4-valued Uniform.
func Mat4Uniform(m Mat4) Uniform {
	return Uniform{Kind: UniformMat4, Mat4: m}
}
