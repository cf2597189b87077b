package stats

import (
	"sync"
	"time"
)

type Stats struct {
	FramesRendered uint64  `json:"frames_rendered"`
	Uptime         float64 `json:"uptime"`
	FPS            uint64  `json:"fps"`
	WsClients      int     `json:"ws_clients"`
	Geometry       string  `json:"geometry"`
	GLVersion      string  `json:"gl_version"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	mu sync.Mutex
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update is called once per rendered frame.
func (s *Stats) Update() {
	s.UpdateAt(time.Now())
}

func (s *Stats) UpdateAt(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameCounter++
	s.FramesRendered++
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

// Snapshot returns a copy that is safe to marshal while rendering goes on.
func (s *Stats) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		FramesRendered: s.FramesRendered,
		Uptime:         s.Uptime,
		FPS:            s.FPS,
		WsClients:      s.WsClients,
		Geometry:       s.Geometry,
		GLVersion:      s.GLVersion,
	}
}

// SetInfo records what is being rendered and by which driver.
func (s *Stats) SetInfo(geometry, glVersion string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Geometry = geometry
	s.GLVersion = glVersion
}
