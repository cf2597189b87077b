package rendering_test

import (
	"testing"

	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/fosdem/trisurface/lib/rendering/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticBuffer(t *testing.T) {
	ctx := glfake.New()

	b, err := rendering.NewStaticBuffer(ctx, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, b.Handle(), ctx.BoundBuffer)
	assert.Equal(t, []float32{1, 2, 3, 4}, ctx.BufferData(b.Handle()))

	b.Release()
	assert.Zero(t, b.Handle())
	assert.Empty(t, ctx.Live())
}

func TestReleaseTwiceDeletesOnce(t *testing.T) {
	ctx := glfake.New()

	vao, err := rendering.NewVertexArray(ctx)
	require.NoError(t, err)
	b, err := rendering.NewStaticBuffer(ctx, []float32{0})
	require.NoError(t, err)

	vao.Release()
	vao.Release()
	b.Release()
	b.Release()

	assert.Equal(t, 1, ctx.Count("DeleteVertexArray"))
	assert.Equal(t, 1, ctx.Count("DeleteBuffer"))
}

func TestReleasedProgramIsNotUsed(t *testing.T) {
	ctx := glfake.New()

	p, err := rendering.NewProgram(ctx)
	require.NoError(t, err)
	p.Release()
	p.Release()
	p.Use()

	assert.Equal(t, 1, ctx.Count("DeleteProgram"))
	assert.Zero(t, ctx.Count("UseProgram"))
}

func TestFloatAttrib(t *testing.T) {
	ctx := glfake.New()

	b, err := rendering.NewStaticBuffer(ctx, []float32{0, 0, 0, 1, 1, 0})
	require.NoError(t, err)
	vao, err := rendering.NewVertexArray(ctx)
	require.NoError(t, err)
	vao.Bind()
	vao.FloatAttrib(3, 3)

	attrib, ok := ctx.VertexAttrib(vao.Handle(), 3)
	require.True(t, ok)
	assert.Equal(t, glfake.Attrib{Size: 3, Stride: 12, Buffer: b.Handle(), Enabled: true}, attrib)
}

func TestAllocationErrors(t *testing.T) {
	ctx := glfake.New()
	ctx.AllocFailures[rendering.BufferResource] = true
	ctx.AllocFailures[rendering.VertexArrayResource] = true
	ctx.AllocFailures[rendering.ProgramResource] = true

	_, err := rendering.NewStaticBuffer(ctx, []float32{0})
	assert.EqualError(t, err, "could not allocate buffer")
	_, err = rendering.NewVertexArray(ctx)
	assert.EqualError(t, err, "could not allocate vertex_array")
	_, err = rendering.NewProgram(ctx)
	assert.EqualError(t, err, "could not allocate program")

	assert.Zero(t, ctx.Count("BufferStaticData"))
}

func TestErrorMessages(t *testing.T) {
	err := &rendering.ShaderCompileError{Stage: rendering.FragmentStage, Log: "0:1: bad"}
	assert.Equal(t, "failed to compile fragment shader: 0:1: bad", err.Error())

	linkErr := &rendering.ProgramLinkError{Log: "mismatch"}
	assert.Equal(t, "failed to link program: mismatch", linkErr.Error())
}
