package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fosdem/trisurface/lib/surface"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window   *WindowCfg  `yaml:"window"`
	Geometry GeometryCfg `yaml:"geometry"`
	LogLevel string      `yaml:"log_level"`
	Api      *ApiCfg     `yaml:"api,omitempty"`
}

type WindowCfg struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Window: &WindowCfg{
			Title:  "trisurface",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Geometry: GeometryCfg{surface.ExplicitGeometry},
		LogLevel: "info",
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("could not close %s: %s", filename, err), "module", "config")
		}
	}(f)

	m := yaml.NewDecoder(f)
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("window section must be specified")
	}
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return level, fmt.Errorf("%s is not a valid log level", c.LogLevel)
	}
	return level, nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d, vsync %t)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.VSync))

	b.WriteString("\nGeometry:\n")
	b.WriteString(fmt.Sprintf("  %s\n", c.Geometry))

	b.WriteString("\nApi:\n")
	if c.Api == nil {
		b.WriteString("  disabled\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s (profiler %t)\n", c.Api.Bind, c.Api.EnableProfiler))
	}

	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.Title == "" {
		return fmt.Errorf("title must be specified")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
