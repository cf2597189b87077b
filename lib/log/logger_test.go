package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerModulePrefix(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil))

	logger.Info("surface constructed", "module", "surface", "geometry", "explicit")

	line := out.String()
	assert.Contains(t, line, "[surface] ")
	assert.Contains(t, line, "surface constructed")
	assert.Contains(t, line, " geometry=")
	assert.Contains(t, line, "explicit")
	assert.NotContains(t, line, " module=")
}

func TestHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, out.String())

	logger.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil)).With("module", "api")

	logger.Error("could not serve")
	assert.Contains(t, out.String(), "[api] ")
	assert.Contains(t, out.String(), "could not serve")
}
