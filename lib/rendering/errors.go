package rendering

import "fmt"

// ShaderCompileError is returned when a shader stage does not compile. Log
// holds the compiler output.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError is returned when the compiled stages do not link into a
// program. Log holds the linker output.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// ResourceAllocationError is returned when the context hands out a zero
// object name for a create call.
type ResourceAllocationError struct {
	Kind ResourceKind
}

func (e *ResourceAllocationError) Error() string {
	return fmt.Sprintf("could not allocate %s", e.Kind)
}
