package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/moodscape/render3d"
)

// program implements render3d.Program. Uniform locations are looked up
// once per name and cached for the life of the program.
type program struct {
	handle    uint32
	locations map[string]int32
}

func (p *program) Bind() {
	gl.UseProgram(p.handle)
}

func (p *program) SetUniform(name string, u render3d.Uniform) {
	loc := p.location(name)
	if loc < 0 {
		return
	}
	switch u.Kind {
	case render3d.UniformFloat:
		gl.Uniform1f(loc, u.Float)
	case render3d.UniformVec2:
		gl.Uniform2f(loc, u.Vec2[0], u.Vec2[1])
	case render3d.UniformVec3:
		gl.Uniform3f(loc, u.Vec3[0], u.Vec3[1], u.Vec3[2])
	case render3d.UniformMat4:
		gl.UniformMatrix4fv(loc, 1, false, &u.Mat4[0])
	}
}

func (p *program) Release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func (p *program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// linkProgram compiles both stages and links them into a program.
func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	// Shaders are linked into the program now.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(handle, logLength, nil, &infoLog[0])
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("program linking failed: %s", string(infoLog))
	}

	return handle, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(infoLog))
	}
	return shader, nil
}
