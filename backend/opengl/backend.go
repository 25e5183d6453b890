// Package opengl provides an OpenGL 4.1 backend for the render3d package.
package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/moodscape/render3d"
)

// Surface reports the drawable framebuffer size in device pixels.
// *glfw.Window satisfies it.
type Surface interface {
	GetFramebufferSize() (width, height int)
}

// Backend implements render3d.Backend against OpenGL 4.1 core.
// It must only be used on the thread that owns the GL context.
type Backend struct {
	surface Surface
}

// New creates a Backend drawing to the given surface. The OpenGL context
// must already be current.
func New(surface Surface) *Backend {
	return &Backend{surface: surface}
}

// CompileProgram compiles and links a vertex+fragment program.
func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (render3d.Program, error) {
	handle, err := linkProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// DrawableSize returns the framebuffer size in device pixels.
func (b *Backend) DrawableSize() (int, int) {
	return b.surface.GetFramebufferSize()
}

// Viewport sets the rendering viewport.
func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers.
func (b *Backend) Clear(c render3d.Color) {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(c.R, c.G, c.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh uploads the mesh and issues one indexed draw call with the
// currently bound program. Buffers are created per draw and deleted
// immediately after; mesh data is cached CPU-side by the renderer.
func (b *Backend) DrawMesh(m *render3d.Mesh) {
	if m == nil || len(m.Indices) == 0 {
		return
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var buffers [4]uint32
	gl.GenBuffers(4, &buffers[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, buffers[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, buffers[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*4, gl.Ptr(m.Normals), gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, buffers[2])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.UVs)*4, gl.Ptr(m.UVs), gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STREAM_DRAW)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(m.Indices)), gl.UNSIGNED_INT, 0)

	gl.BindVertexArray(0)
	gl.DeleteBuffers(4, &buffers[0])
	gl.DeleteVertexArrays(1, &vao)
}

// ReadFrame reads the framebuffer back into an image, top row first.
func (b *Backend) ReadFrame() (*image.RGBA, error) {
	width, height := b.surface.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("opengl: empty drawable %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL rows start at the bottom; flip into image order.
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*rowLen : (y+1)*rowLen]
		bottom := img.Pix[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
	return img, nil
}
