package rendering

import (
	"github.com/go-gl/mathgl/mgl32"
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Context is the part of a core-profile graphics API that is needed to build
// a program, describe vertex data and draw with it. All handles are GL object
// names; create calls return 0 when the object could not be allocated.
// A Context is bound to a single thread and must not be shared.
type Context interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	CreateBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// BufferStaticData uploads data into the bound array buffer with a
	// static draw usage hint.
	BufferStaticData(data []float32)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	// VertexAttribFloat declares attribute index as size float32
	// components read from the bound array buffer.
	VertexAttribFloat(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttrib(index uint32)
	DeleteVertexArray(vao uint32)

	ClearColor(c mgl32.Vec4)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
}
