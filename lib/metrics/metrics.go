package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trisurface_frames_rendered_total",
		Help: "Total number of frames rendered by the surface",
	})
	FrameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trisurface_frame_seconds",
		Help:    "Time between two consecutive rendered frames",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	})
	ObjectsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trisurface_gl_objects_created_total",
		Help: "Total number of GL objects created, by kind",
	}, []string{"kind"})
	ObjectsReleased = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trisurface_gl_objects_released_total",
		Help: "Total number of GL objects released, by kind",
	}, []string{"kind"})
)

func ObjectCreated(kind string) {
	ObjectsCreated.WithLabelValues(kind).Inc()
}

func ObjectReleased(kind string) {
	ObjectsReleased.WithLabelValues(kind).Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
