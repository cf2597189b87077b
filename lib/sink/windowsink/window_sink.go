package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trisurface/lib/config"
	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink is a window with an OpenGL 4.1 core context that is current on
// the thread that created it.
type WindowSink struct {
	Window *glfw.Window
	GLInfo *rendering.Info

	cfg *config.WindowCfg
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{cfg: cfg}
}

// Start opens the window, makes its context current and loads GL. It must
// be called from the main thread.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	w.log().Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	if w.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	info, err := rendering.Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return err
	}

	w.Window = window
	w.GLInfo = info
	w.log().Info(fmt.Sprintf("OpenGL version %s / %s / %s", info.Vendor, info.Renderer, info.Version))
	return nil
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

// Close destroys the window and its context. Everything allocated on the
// context must have been released before.
func (w *WindowSink) Close() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}

func (w *WindowSink) log() *slog.Logger {
	return slog.With("module", "window", "title", w.cfg.Title)
}
