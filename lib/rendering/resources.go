package rendering

import (
	"github.com/fosdem/trisurface/lib/metrics"
)

type ResourceKind string

const (
	ShaderResource      ResourceKind = "shader"
	ProgramResource     ResourceKind = "program"
	BufferResource      ResourceKind = "buffer"
	VertexArrayResource ResourceKind = "vertex_array"
)

func (k ResourceKind) String() string {
	return string(k)
}

// Program is a linked shader program owned by whoever created it. The zero
// handle means the program was released.
type Program struct {
	ctx    Context
	handle uint32
}

// NewProgram creates an empty program object.
func NewProgram(ctx Context) (*Program, error) {
	handle := ctx.CreateProgram()
	if handle == 0 {
		return nil, &ResourceAllocationError{Kind: ProgramResource}
	}
	metrics.ObjectCreated(ProgramResource.String())
	return &Program{ctx: ctx, handle: handle}, nil
}

func (p *Program) Handle() uint32 {
	return p.handle
}

func (p *Program) Use() {
	if p.handle == 0 {
		return
	}
	p.ctx.UseProgram(p.handle)
}

func (p *Program) Release() {
	if p.handle == 0 {
		return
	}
	p.ctx.DeleteProgram(p.handle)
	p.handle = 0
	metrics.ObjectReleased(ProgramResource.String())
}

// VertexArray owns a vertex-array object.
type VertexArray struct {
	ctx    Context
	handle uint32
}

func NewVertexArray(ctx Context) (*VertexArray, error) {
	handle := ctx.CreateVertexArray()
	if handle == 0 {
		return nil, &ResourceAllocationError{Kind: VertexArrayResource}
	}
	metrics.ObjectCreated(VertexArrayResource.String())
	return &VertexArray{ctx: ctx, handle: handle}, nil
}

func (v *VertexArray) Handle() uint32 {
	return v.handle
}

func (v *VertexArray) Bind() {
	if v.handle == 0 {
		return
	}
	v.ctx.BindVertexArray(v.handle)
}

// FloatAttrib declares attribute index as size tightly packed float32
// components read from the currently bound array buffer, and enables it.
// The vertex array must be bound.
func (v *VertexArray) FloatAttrib(index uint32, size int32) {
	v.ctx.VertexAttribFloat(index, size, size*f32, 0)
	v.ctx.EnableVertexAttrib(index)
}

func (v *VertexArray) Release() {
	if v.handle == 0 {
		return
	}
	v.ctx.DeleteVertexArray(v.handle)
	v.handle = 0
	metrics.ObjectReleased(VertexArrayResource.String())
}

// Buffer owns an array buffer holding immutable float32 vertex data.
type Buffer struct {
	ctx    Context
	handle uint32
	len    int
}

// NewStaticBuffer creates an array buffer and uploads data into it. The
// buffer is left bound.
func NewStaticBuffer(ctx Context, data []float32) (*Buffer, error) {
	handle := ctx.CreateBuffer()
	if handle == 0 {
		return nil, &ResourceAllocationError{Kind: BufferResource}
	}
	metrics.ObjectCreated(BufferResource.String())
	b := &Buffer{ctx: ctx, handle: handle, len: len(data)}
	b.Bind()
	ctx.BufferStaticData(data)
	return b, nil
}

func (b *Buffer) Handle() uint32 {
	return b.handle
}

// Len returns the number of float32 values uploaded.
func (b *Buffer) Len() int {
	return b.len
}

func (b *Buffer) Bind() {
	if b.handle == 0 {
		return
	}
	b.ctx.BindArrayBuffer(b.handle)
}

func (b *Buffer) Release() {
	if b.handle == 0 {
		return
	}
	b.ctx.DeleteBuffer(b.handle)
	b.handle = 0
	metrics.ObjectReleased(BufferResource.String())
}
