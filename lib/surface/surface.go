package surface

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trisurface/lib/metrics"
	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/fosdem/trisurface/lib/rendering/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

type GeometryMode int

const (
	// ImplicitGeometry draws without a vertex buffer, the vertex shader
	// picks each position by gl_VertexID.
	ImplicitGeometry GeometryMode = iota
	// ExplicitGeometry uploads the triangle into a vertex buffer.
	ExplicitGeometry
)

func (m GeometryMode) String() string {
	switch m {
	case ImplicitGeometry:
		return "implicit"
	case ExplicitGeometry:
		return "explicit"
	}
	return fmt.Sprintf("GeometryMode(%d)", int(m))
}

func ParseGeometryMode(s string) (GeometryMode, error) {
	switch s {
	case "implicit":
		return ImplicitGeometry, nil
	case "explicit":
		return ExplicitGeometry, nil
	}
	return 0, fmt.Errorf("unknown geometry mode %q, expected implicit or explicit", s)
}

type State int

const (
	Constructed State = iota
	Destroyed
)

func (s State) String() string {
	if s == Destroyed {
		return "destroyed"
	}
	return "constructed"
}

const (
	PositionAttrib = 0
	VertexCount    = 3
)

var (
	ClearColour = mgl32.Vec4{0.1, 0.2, 0.3, 1.0}

	Triangle = [VertexCount]mgl32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.0, 0.5},
	}
)

// GraphicsSurface owns everything needed to draw one static triangle on
// the context it was built with: a linked program, a vertex array and, in
// ExplicitGeometry mode, the vertex buffer behind it.
// A surface must be used from the thread that owns its context.
type GraphicsSurface struct {
	ctx  rendering.Context
	mode GeometryMode

	program *rendering.Program
	vao     *rendering.VertexArray
	vbo     *rendering.Buffer

	state State
}

// New builds the program, makes it current, sets up the vertex array for
// mode and sets the clear colour. A *rendering.ShaderCompileError or
// *rendering.ProgramLinkError means the surface cannot be used at all;
// nothing is left allocated on ctx when New fails.
func New(ctx rendering.Context, mode GeometryMode) (*GraphicsSurface, error) {
	s := &GraphicsSurface{ctx: ctx, mode: mode}

	program, err := shaders.BuildTriangleProgram(ctx, &shaders.ShaderData{
		GLSLVersion:    shaders.GLSLVersion,
		Implicit:       mode == ImplicitGeometry,
		Vertices:       Triangle[:],
		PositionAttrib: PositionAttrib,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build %s triangle program: %w", mode, err)
	}
	s.program = program
	s.program.Use()

	if mode == ExplicitGeometry {
		s.vbo, err = rendering.NewStaticBuffer(ctx, flatten(Triangle[:]))
		if err != nil {
			s.release()
			return nil, err
		}
	}

	s.vao, err = rendering.NewVertexArray(ctx)
	if err != nil {
		s.release()
		return nil, err
	}
	s.vao.Bind()

	if s.vbo != nil {
		s.vbo.Bind()
		s.vao.FloatAttrib(PositionAttrib, 2)
	}

	ctx.ClearColor(ClearColour)

	s.log().Debug("surface constructed")
	return s, nil
}

func flatten(vertices []mgl32.Vec2) []float32 {
	data := make([]float32, 0, len(vertices)*2)
	for _, v := range vertices {
		data = append(data, v.X(), v.Y())
	}
	return data
}

func (s *GraphicsSurface) Mode() GeometryMode {
	return s.mode
}

func (s *GraphicsSurface) State() State {
	return s.state
}

// Render clears the colour buffer and draws the triangle with whatever
// vertex array is bound, which is this surface's own.
func (s *GraphicsSurface) Render() {
	if s.state == Destroyed {
		s.log().Warn("render called on a destroyed surface")
		return
	}
	s.ctx.ClearColorBuffer()
	s.ctx.DrawTriangles(0, VertexCount)
	metrics.FramesRendered.Inc()
}

// Destroy releases the program, the vertex array and the vertex buffer, in
// that order. The surface must not be used afterwards.
func (s *GraphicsSurface) Destroy() {
	if s.state == Destroyed {
		s.log().Warn("surface destroyed twice")
		return
	}
	s.release()
	s.state = Destroyed
	s.log().Debug("surface destroyed")
}

func (s *GraphicsSurface) release() {
	if s.program != nil {
		s.program.Release()
	}
	if s.vao != nil {
		s.vao.Release()
	}
	if s.vbo != nil {
		s.vbo.Release()
	}
}

func (s *GraphicsSurface) log() *slog.Logger {
	return slog.With("module", "surface", "geometry", s.mode.String())
}
