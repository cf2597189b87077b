package kbdctl

import (
	"log/slog"

	"github.com/fosdem/trisurface/lib/sink/windowsink"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupShortcutKeys makes Escape and Ctrl+Shift+Q call requestShutdown.
func SetupShortcutKeys(ws *windowsink.WindowSink, requestShutdown func()) {
	ws.Window.SetKeyCallback(keyCallback(requestShutdown))
}

func Poll() {
	glfw.PollEvents()
}

func isQuit(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) bool {
	if action != glfw.Release {
		return false
	}
	if key == glfw.KeyEscape {
		return true
	}
	return key == glfw.KeyQ &&
		mods&glfw.ModControl != 0 &&
		mods&glfw.ModShift != 0
}

func keyCallback(requestShutdown func()) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if isQuit(key, action, mods) {
			slog.Info("told to quit, exiting", "module", "kbdctl")
			requestShutdown()
		}
	}
}
