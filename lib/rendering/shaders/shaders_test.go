package shaders

import (
	"errors"
	"testing"

	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/fosdem/trisurface/lib/rendering/glfake"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var triangle = []mgl32.Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}

func TestTemplateNames(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"triangle.vert", "triangle.frag"}, s.TemplateNames())
}

func TestVertexShaderExplicit(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("triangle.vert", &ShaderData{GLSLVersion: GLSLVersion, PositionAttrib: 0})
	require.NoError(t, err)
	assert.Contains(t, src, "#version 410 core")
	assert.Contains(t, src, "layout(location = 0) in vec2 position;")
	assert.NotContains(t, src, "gl_VertexID")
}

func TestVertexShaderImplicit(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("triangle.vert", &ShaderData{
		GLSLVersion: GLSLVersion,
		Implicit:    true,
		Vertices:    triangle,
	})
	require.NoError(t, err)
	assert.Contains(t, src, "gl_VertexID")
	assert.Contains(t, src, "vec2(-0.500000, -0.500000),")
	assert.Contains(t, src, "vec2(0.500000, -0.500000),")
	assert.Contains(t, src, "vec2(0.000000, 0.500000)\n);")
	assert.NotContains(t, src, "in vec2 position")
}

func TestUnknownTemplate(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource("nope.geom", &ShaderData{})
	assert.Error(t, err)
}

func TestBuildProgram(t *testing.T) {
	ctx := glfake.New()

	program, err := BuildTriangleProgram(ctx, &ShaderData{GLSLVersion: GLSLVersion})
	require.NoError(t, err)
	require.NotNil(t, program)

	assert.Equal(t, []uint32{program.Handle()}, ctx.Live())
	assert.Equal(t, 2, ctx.Created(rendering.ShaderResource))
	assert.Equal(t, 2, ctx.Deleted(rendering.ShaderResource))
	assert.Equal(t, 2, ctx.Count("DetachShader"))
	assert.Zero(t, ctx.Count("UseProgram"))
}

func TestBuildProgramCompileError(t *testing.T) {
	for _, stage := range []rendering.ShaderStage{rendering.VertexStage, rendering.FragmentStage} {
		t.Run(stage.String(), func(t *testing.T) {
			ctx := glfake.New()
			ctx.CompileErrors[stage] = "0:3(1): error: syntax error, unexpected '}'"

			program, err := BuildTriangleProgram(ctx, &ShaderData{GLSLVersion: GLSLVersion})
			assert.Nil(t, program)

			var compileErr *rendering.ShaderCompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, stage, compileErr.Stage)
			assert.Equal(t, "0:3(1): error: syntax error, unexpected '}'", compileErr.Log)

			assert.Empty(t, ctx.Live())
			assert.Zero(t, ctx.Count("CreateProgram"))
			assert.Zero(t, ctx.Count("UseProgram"))
		})
	}
}

func TestBuildProgramEmptySource(t *testing.T) {
	ctx := glfake.New()

	_, err := BuildProgram(ctx, "", "void main() {}")

	var compileErr *rendering.ShaderCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, rendering.VertexStage, compileErr.Stage)
	assert.Empty(t, ctx.Live())
}

func TestBuildProgramLinkError(t *testing.T) {
	ctx := glfake.New()
	ctx.LinkError = "error: vertex shader output `colour' not read by fragment shader"

	program, err := BuildTriangleProgram(ctx, &ShaderData{GLSLVersion: GLSLVersion})
	assert.Nil(t, program)

	var linkErr *rendering.ProgramLinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Contains(t, linkErr.Log, "not read by fragment shader")

	assert.Empty(t, ctx.Live())
	assert.Equal(t, 1, ctx.Deleted(rendering.ProgramResource))
	assert.Equal(t, 2, ctx.Count("DetachShader"))
	assert.Zero(t, ctx.Count("UseProgram"))
}

func TestBuildProgramAllocationFailure(t *testing.T) {
	ctx := glfake.New()
	ctx.AllocFailures[rendering.ProgramResource] = true

	_, err := BuildTriangleProgram(ctx, &ShaderData{GLSLVersion: GLSLVersion})

	var allocErr *rendering.ResourceAllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, rendering.ProgramResource, allocErr.Kind)
	assert.Empty(t, ctx.Live())
}
