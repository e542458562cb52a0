// Package metrics defines the Prometheus collectors for the quotation
// service. Collectors register themselves on the default registry; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotegen_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quotegen_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AssistRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotegen_assist_requests_total",
			Help: "AI assist operations by kind and outcome (ok, fallback, error).",
		},
		[]string{"operation", "outcome"},
	)
)
