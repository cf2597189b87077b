package rendering

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// GLContext implements Context on top of the OpenGL context that is current
// on the calling thread. Init must have been called first.
type GLContext struct{}

func NewGLContext() *GLContext {
	return &GLContext{}
}

func glShaderType(stage ShaderStage) uint32 {
	if stage == FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (c *GLContext) CreateShader(stage ShaderStage) uint32 {
	return gl.CreateShader(glShaderType(stage))
}

func (c *GLContext) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (c *GLContext) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *GLContext) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *GLContext) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00")
}

func (c *GLContext) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *GLContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *GLContext) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *GLContext) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *GLContext) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *GLContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *GLContext) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return strings.TrimRight(logmsg, "\x00")
}

func (c *GLContext) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *GLContext) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *GLContext) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *GLContext) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (c *GLContext) BufferStaticData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *GLContext) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *GLContext) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *GLContext) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (c *GLContext) VertexAttribFloat(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (c *GLContext) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *GLContext) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *GLContext) ClearColor(colour mgl32.Vec4) {
	gl.ClearColor(colour[0], colour[1], colour[2], colour[3])
}

func (c *GLContext) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *GLContext) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
