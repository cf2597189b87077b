package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const GLSLVersion = "410 core"

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion string

	// Implicit makes the vertex shader emit Vertices by gl_VertexID
	// instead of reading them from PositionAttrib.
	Implicit       bool
	Vertices       []mgl32.Vec2
	PositionAttrib uint32
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
