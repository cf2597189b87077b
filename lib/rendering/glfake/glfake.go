// Package glfake provides a rendering.Context that records every call and
// keeps track of the objects it hands out, for use in tests.
package glfake

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded context call. Name is the method name.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type Attrib struct {
	Size    int32
	Stride  int32
	Offset  uintptr
	Buffer  uint32
	Enabled bool
}

type object struct {
	kind     rendering.ResourceKind
	stage    rendering.ShaderStage
	source   string
	compiled bool
	linked   bool
	attached []uint32
	data     []float32
	attribs  map[uint32]*Attrib
}

// Context is a fake graphics context. The zero value is not usable, call
// New.
type Context struct {
	Calls []Call

	// CompileErrors makes compilation of the given stage fail with the
	// given diagnostic.
	CompileErrors map[rendering.ShaderStage]string
	// LinkError, when not empty, makes every link fail with it.
	LinkError string
	// AllocFailures makes create calls for the given kinds return 0.
	AllocFailures map[rendering.ResourceKind]bool

	ClearColour    mgl32.Vec4
	CurrentProgram uint32
	BoundVAO       uint32
	BoundBuffer    uint32

	objects    map[uint32]*object
	nextHandle uint32
	created    map[rendering.ResourceKind]int
	deleted    map[rendering.ResourceKind]int
}

func New() *Context {
	return &Context{
		CompileErrors: make(map[rendering.ShaderStage]string),
		AllocFailures: make(map[rendering.ResourceKind]bool),
		objects:       make(map[uint32]*object),
		created:       make(map[rendering.ResourceKind]int),
		deleted:       make(map[rendering.ResourceKind]int),
	}
}

var _ rendering.Context = (*Context)(nil)

func (c *Context) record(name string, args ...any) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

// CallNames returns the names of all recorded calls in order.
func (c *Context) CallNames() []string {
	names := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		names[i] = call.Name
	}
	return names
}

// Count returns how often the named call was made.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls but keeps all objects.
func (c *Context) Reset() {
	c.Calls = nil
}

func (c *Context) Created(kind rendering.ResourceKind) int {
	return c.created[kind]
}

func (c *Context) Deleted(kind rendering.ResourceKind) int {
	return c.deleted[kind]
}

// Live returns the handles that were created and not yet deleted.
func (c *Context) Live() []uint32 {
	return slices.Sorted(maps.Keys(c.objects))
}

// BufferData returns what was uploaded into buffer.
func (c *Context) BufferData(buffer uint32) []float32 {
	o, ok := c.objects[buffer]
	if !ok {
		return nil
	}
	return o.data
}

// VertexAttrib returns the attribute declared at index on vao.
func (c *Context) VertexAttrib(vao uint32, index uint32) (Attrib, bool) {
	o, ok := c.objects[vao]
	if !ok {
		return Attrib{}, false
	}
	a, ok := o.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *a, true
}

// AttribCount returns the number of attributes declared on vao.
func (c *Context) AttribCount(vao uint32) int {
	o, ok := c.objects[vao]
	if !ok {
		return 0
	}
	return len(o.attribs)
}

func (c *Context) create(kind rendering.ResourceKind) uint32 {
	if c.AllocFailures[kind] {
		return 0
	}
	c.nextHandle++
	c.objects[c.nextHandle] = &object{kind: kind}
	c.created[kind]++
	return c.nextHandle
}

func (c *Context) get(handle uint32, kind rendering.ResourceKind) *object {
	o, ok := c.objects[handle]
	if !ok {
		panic(fmt.Sprintf("glfake: %s %d does not exist", kind, handle))
	}
	if o.kind != kind {
		panic(fmt.Sprintf("glfake: object %d is a %s, not a %s", handle, o.kind, kind))
	}
	return o
}

func (c *Context) delete(handle uint32, kind rendering.ResourceKind) {
	if handle == 0 {
		return
	}
	c.get(handle, kind)
	delete(c.objects, handle)
	c.deleted[kind]++
}

func (c *Context) CreateShader(stage rendering.ShaderStage) uint32 {
	c.record("CreateShader", stage)
	h := c.create(rendering.ShaderResource)
	if h != 0 {
		c.objects[h].stage = stage
	}
	return h
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.record("ShaderSource", shader)
	c.get(shader, rendering.ShaderResource).source = source
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader", shader)
	o := c.get(shader, rendering.ShaderResource)
	_, fail := c.CompileErrors[o.stage]
	o.compiled = !fail && o.source != ""
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	c.record("ShaderCompiled", shader)
	return c.get(shader, rendering.ShaderResource).compiled
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	c.record("ShaderInfoLog", shader)
	o := c.get(shader, rendering.ShaderResource)
	if msg, ok := c.CompileErrors[o.stage]; ok {
		return msg
	}
	if o.source == "" {
		return "empty shader source"
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader", shader)
	c.delete(shader, rendering.ShaderResource)
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	return c.create(rendering.ProgramResource)
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader", program, shader)
	p := c.get(program, rendering.ProgramResource)
	c.get(shader, rendering.ShaderResource)
	p.attached = append(p.attached, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	c.record("DetachShader", program, shader)
	p := c.get(program, rendering.ProgramResource)
	i := slices.Index(p.attached, shader)
	if i < 0 {
		panic(fmt.Sprintf("glfake: shader %d is not attached to program %d", shader, program))
	}
	p.attached = slices.Delete(p.attached, i, i+1)
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram", program)
	p := c.get(program, rendering.ProgramResource)
	stages := map[rendering.ShaderStage]bool{}
	for _, s := range p.attached {
		o := c.get(s, rendering.ShaderResource)
		stages[o.stage] = o.compiled
	}
	p.linked = c.LinkError == "" && stages[rendering.VertexStage] && stages[rendering.FragmentStage]
}

func (c *Context) ProgramLinked(program uint32) bool {
	c.record("ProgramLinked", program)
	return c.get(program, rendering.ProgramResource).linked
}

func (c *Context) ProgramInfoLog(program uint32) string {
	c.record("ProgramInfoLog", program)
	c.get(program, rendering.ProgramResource)
	return c.LinkError
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram", program)
	if !c.get(program, rendering.ProgramResource).linked {
		panic(fmt.Sprintf("glfake: program %d is not linked", program))
	}
	c.CurrentProgram = program
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram", program)
	c.delete(program, rendering.ProgramResource)
	if c.CurrentProgram == program {
		c.CurrentProgram = 0
	}
}

func (c *Context) CreateBuffer() uint32 {
	c.record("CreateBuffer")
	return c.create(rendering.BufferResource)
}

func (c *Context) BindArrayBuffer(buffer uint32) {
	c.record("BindArrayBuffer", buffer)
	if buffer != 0 {
		c.get(buffer, rendering.BufferResource)
	}
	c.BoundBuffer = buffer
}

func (c *Context) BufferStaticData(data []float32) {
	c.record("BufferStaticData", len(data))
	if c.BoundBuffer == 0 {
		panic("glfake: no array buffer bound")
	}
	c.get(c.BoundBuffer, rendering.BufferResource).data = slices.Clone(data)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer", buffer)
	c.delete(buffer, rendering.BufferResource)
	if c.BoundBuffer == buffer {
		c.BoundBuffer = 0
	}
}

func (c *Context) CreateVertexArray() uint32 {
	c.record("CreateVertexArray")
	h := c.create(rendering.VertexArrayResource)
	if h != 0 {
		c.objects[h].attribs = make(map[uint32]*Attrib)
	}
	return h
}

func (c *Context) BindVertexArray(vao uint32) {
	c.record("BindVertexArray", vao)
	if vao != 0 {
		c.get(vao, rendering.VertexArrayResource)
	}
	c.BoundVAO = vao
}

func (c *Context) VertexAttribFloat(index uint32, size int32, stride int32, offset uintptr) {
	c.record("VertexAttribFloat", index, size, stride, offset)
	if c.BoundVAO == 0 {
		panic("glfake: no vertex array bound")
	}
	if c.BoundBuffer == 0 {
		panic("glfake: no array buffer bound")
	}
	c.get(c.BoundVAO, rendering.VertexArrayResource).attribs[index] = &Attrib{
		Size:   size,
		Stride: stride,
		Offset: offset,
		Buffer: c.BoundBuffer,
	}
}

func (c *Context) EnableVertexAttrib(index uint32) {
	c.record("EnableVertexAttrib", index)
	if c.BoundVAO == 0 {
		panic("glfake: no vertex array bound")
	}
	a, ok := c.get(c.BoundVAO, rendering.VertexArrayResource).attribs[index]
	if !ok {
		panic(fmt.Sprintf("glfake: attribute %d is not declared", index))
	}
	a.Enabled = true
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.record("DeleteVertexArray", vao)
	c.delete(vao, rendering.VertexArrayResource)
	if c.BoundVAO == vao {
		c.BoundVAO = 0
	}
}

func (c *Context) ClearColor(colour mgl32.Vec4) {
	c.record("ClearColor", colour)
	c.ClearColour = colour
}

func (c *Context) ClearColorBuffer() {
	c.record("ClearColorBuffer")
}

func (c *Context) DrawTriangles(first, count int32) {
	c.record("DrawTriangles", first, count)
	if c.CurrentProgram == 0 {
		panic("glfake: draw without a program")
	}
	if c.BoundVAO == 0 {
		panic("glfake: draw without a vertex array")
	}
}
