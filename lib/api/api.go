package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/trisurface/lib/api/docs"
	"github.com/fosdem/trisurface/lib/config"
	"github.com/fosdem/trisurface/lib/metrics"
	"github.com/fosdem/trisurface/lib/stats"
)

//go:generate go tool swag init --generalInfo api.go --output docs --outputTypes go

//	@title			trisurface API
//	@description	Status and control of a running trisurface window.

type Api struct {
	srv http.Server
	mux *http.ServeMux
	cfg *config.ApiCfg

	Stats *stats.Stats

	requestShutdown func()

	wsClients      map[*websocket.Conn]bool
	wsClientsMutex sync.Mutex
	statsInterval  time.Duration
}

// New builds the API. requestShutdown is called when a client asks for the
// program to stop; it must be safe to call from any goroutine.
func New(cfg *config.ApiCfg, s *stats.Stats, requestShutdown func()) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.statsInterval = 2 * time.Second
	a.Stats = s
	a.requestShutdown = requestShutdown

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return a
}

// ServeInBackground starts the API when cfg is set and returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, s *stats.Stats, requestShutdown func()) *Api {
	if cfg == nil {
		return nil
	}
	a := New(cfg, s, requestShutdown)
	go func() {
		err := a.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log().Error(fmt.Sprintf("could not serve api: %s", err))
		}
	}()
	return a
}

func (a *Api) Serve() error {
	a.log().Info(fmt.Sprintf("listening on %s", a.cfg.Bind))
	return a.srv.ListenAndServe()
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.wsClientsMutex.Lock()
	for ws := range a.wsClients {
		_ = ws.Close()
	}
	a.wsClientsMutex.Unlock()
	return a.srv.Shutdown(ctx)
}

//	@Summary	Record a CPU profile for ten seconds
//	@Router		/prof [get]
//	@Tags		debug
//	@Produce	octet-stream
//	@Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

//	@Summary	Close the window and exit
//	@Router		/api/kill [post]
//	@Tags		base
//	@Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log().Info("shutting down as per api request")
	a.requestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log().Warn(fmt.Sprintf("could not write response: %s", err))
		return
	}
}

//	@Summary	Get rendering statistics
//	@Router		/api/stats [get]
//	@Tags		base
//	@Produce	json
//	@Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	snap := a.Stats.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(&snap)
	if err != nil {
		http.Error(w, fmt.Sprintf("could encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) log() *slog.Logger {
	return slog.With("module", "api")
}
