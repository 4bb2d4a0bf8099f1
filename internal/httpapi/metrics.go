package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one server.
// Each server owns its registry so tests can build several.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	computations *prometheus.CounterVec
}

// NewMetrics registers the request and attribution collectors plus the Go runtime ones.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attribution_http_requests_total",
				Help: "Number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "attribution_http_request_duration_seconds",
				Help:    "Latency of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attribution_model_computations_total",
				Help: "Number of attribution model runs served",
			},
			[]string{"model"},
		),
	}
	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.computations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observeRequest records one finished request.
func (m *Metrics) observeRequest(method, route string, status int, seconds float64) {
	m.requests.WithLabelValues(method, route, http.StatusText(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(seconds)
}

// countComputation records a model run.
func (m *Metrics) countComputation(model string) {
	m.computations.WithLabelValues(model).Inc()
}
