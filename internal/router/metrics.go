package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "intake",
		Subsystem: "router",
		Name:      "decisions_total",
		Help:      "Routing decisions by status and error kind.",
	}, []string{"status", "error_kind"})

	classificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "intake",
		Subsystem: "router",
		Name:      "classification_duration_seconds",
		Help:      "Latency of the intent classification call, including failures.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})
)

func observeDecision(d Decision) {
	decisionsTotal.WithLabelValues(string(d.Status), string(d.ErrorKind)).Inc()
}
