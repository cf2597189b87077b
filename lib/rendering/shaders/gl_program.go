package shaders

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trisurface/lib/metrics"
	"github.com/fosdem/trisurface/lib/rendering"
)

// BuildTriangleProgram renders the embedded triangle shaders for data and
// links them into a program.
func BuildTriangleProgram(ctx rendering.Context, data *ShaderData) (*rendering.Program, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexShader, err := shaderer.GetShaderSource("triangle.vert", data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource("triangle.frag", data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return BuildProgram(ctx, vertexShader, fragmentShader)
}

// BuildProgram compiles both stages and links them. The stage objects are
// detached and deleted once the program is linked; on failure nothing
// created here is left behind.
func BuildProgram(ctx rendering.Context, vertexShaderSource, fragmentShaderSource string) (*rendering.Program, error) {
	vertexShader, err := compileShader(ctx, vertexShaderSource, rendering.VertexStage)
	if err != nil {
		return nil, err
	}
	defer deleteShader(ctx, vertexShader)

	fragmentShader, err := compileShader(ctx, fragmentShaderSource, rendering.FragmentStage)
	if err != nil {
		return nil, err
	}
	defer deleteShader(ctx, fragmentShader)

	program, err := rendering.NewProgram(ctx)
	if err != nil {
		return nil, err
	}

	ctx.AttachShader(program.Handle(), vertexShader)
	ctx.AttachShader(program.Handle(), fragmentShader)
	ctx.LinkProgram(program.Handle())
	linked := ctx.ProgramLinked(program.Handle())

	var linkErr error
	if !linked {
		linkErr = &rendering.ProgramLinkError{Log: ctx.ProgramInfoLog(program.Handle())}
	}

	ctx.DetachShader(program.Handle(), vertexShader)
	ctx.DetachShader(program.Handle(), fragmentShader)

	if linkErr != nil {
		program.Release()
		return nil, linkErr
	}

	slog.Debug("linked shader program", "module", "shaders", "program", program.Handle())
	return program, nil
}

func compileShader(ctx rendering.Context, source string, stage rendering.ShaderStage) (uint32, error) {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0, &rendering.ResourceAllocationError{Kind: rendering.ShaderResource}
	}
	metrics.ObjectCreated(rendering.ShaderResource.String())

	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		err := &rendering.ShaderCompileError{Stage: stage, Log: ctx.ShaderInfoLog(shader)}
		deleteShader(ctx, shader)
		return 0, err
	}

	return shader, nil
}

func deleteShader(ctx rendering.Context, shader uint32) {
	ctx.DeleteShader(shader)
	metrics.ObjectReleased(rendering.ShaderResource.String())
}
