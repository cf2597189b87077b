package viewer

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/fosdem/trisurface/lib/api"
	"github.com/fosdem/trisurface/lib/config"
	"github.com/fosdem/trisurface/lib/kbdctl"
	"github.com/fosdem/trisurface/lib/metrics"
	"github.com/fosdem/trisurface/lib/rendering"
	"github.com/fosdem/trisurface/lib/sink/windowsink"
	"github.com/fosdem/trisurface/lib/stats"
	"github.com/fosdem/trisurface/lib/surface"
	"github.com/fosdem/trisurface/lib/utils"
	"golang.org/x/sys/unix"
)

type renderer interface {
	Render()
}

type frameSink interface {
	SwapBuffers()
	ShouldClose() bool
}

// MakeWindowAndRun opens the window, draws the triangle on every frame
// until the window is closed or a shutdown is requested, and tears
// everything down again. It must run on the main OS thread.
func MakeWindowAndRun(cfg *config.Config) {
	var shutdownRequested atomic.Bool
	requestShutdown := func() { shutdownRequested.Store(true) }

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		for s := range sig {
			slog.Info(fmt.Sprintf("received %s, exiting", s), "module", "viewer")
			requestShutdown()
		}
	}()

	window := windowsink.New(cfg.Window)
	err := window.Start()
	if err != nil {
		log.Fatalf("could not open window: %s", err)
	}
	defer window.Close()

	surf, err := surface.New(rendering.NewGLContext(), cfg.Geometry.GeometryMode)
	if err != nil {
		// Close is deferred but Fatalf would skip it
		window.Close()
		log.Fatalf("could not construct surface: %s", err)
	}
	defer surf.Destroy()

	st := stats.New()
	st.SetInfo(cfg.Geometry.String(), window.GLInfo.Version)

	a := api.ServeInBackground(cfg.Api, st, requestShutdown)
	if a != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := a.Shutdown(ctx); err != nil {
				slog.Warn(fmt.Sprintf("could not stop api: %s", err), "module", "viewer")
			}
		}()
	}

	kbdctl.SetupShortcutKeys(window, requestShutdown)

	frames := runLoop(surf, window, kbdctl.Poll, &shutdownRequested, st)
	slog.Info(fmt.Sprintf("rendered %d frames", frames), "module", "viewer")
}

// runLoop renders until sink wants to close or stop is set and returns the
// number of frames drawn.
func runLoop(r renderer, sink frameSink, poll func(), stop *atomic.Bool, st *stats.Stats) uint64 {
	var deltaTimer utils.DeltaTimer
	var frames uint64
	for !stop.Load() {
		dt := deltaTimer.Next()
		if frames > 0 {
			metrics.FrameSeconds.Observe(dt.Seconds())
		}

		r.Render()
		sink.SwapBuffers()
		frames++

		if sink.ShouldClose() {
			stop.Store(true)
		}

		// Maintenance
		st.Update()
		poll()
	}
	return frames
}
