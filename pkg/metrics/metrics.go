// Package metrics holds the Prometheus collectors shared across the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsroom",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Handled HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsroom",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of handled HTTP requests by route pattern.",
		Buckets:   DefaultBuckets,
	}, []string{"route", "method"})

	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsroom",
		Subsystem: "uploads",
		Name:      "total",
		Help:      "Finished image uploads by final state.",
	}, []string{"state"})

	UploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "newsroom",
		Subsystem: "uploads",
		Name:      "duration_seconds",
		Help:      "Time from presign request to stored image.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	BackendUnauthorizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newsroom",
		Subsystem: "session",
		Name:      "backend_unauthorized_total",
		Help:      "Sessions ended because the backend rejected their token.",
	})
)
