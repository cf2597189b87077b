package config

import (
	"github.com/fosdem/trisurface/lib/surface"
	yaml "github.com/goccy/go-yaml"
)

type GeometryCfg struct {
	surface.GeometryMode
}

func (g *GeometryCfg) UnmarshalYAML(b []byte) error {
	var mode string

	err := yaml.Unmarshal(b, &mode)
	if err != nil {
		return err
	}

	g.GeometryMode, err = surface.ParseGeometryMode(mode)
	return err
}

func (g GeometryCfg) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(g.GeometryMode.String())
}
