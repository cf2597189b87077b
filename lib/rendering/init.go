package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Info describes the driver behind the current GL context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
}

// Init loads the GL entry points for the context that is current on this
// thread.
func Init() (*Info, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	info := &Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	slog.Info(fmt.Sprintf("OpenGL version '%s'", info.Version), "module", "rendering")

	return info, nil
}
