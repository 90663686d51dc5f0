// Package metrics exposes Prometheus instrumentation for payment simulations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

const namespace = "tpay_readiness"

// Metrics owns a private registry so independent instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	submissions        *prometheus.CounterVec
	validationFailures prometheus.Counter
	simulationFailures prometheus.Counter
	gatewayLatency     prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates and registers every collector, including Go runtime and process stats.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_submissions_total",
			Help:      "Recorded payment simulations by outcome and gateway response code.",
		}, []string{"status", "response_code"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_validation_failures_total",
			Help:      "Payment submissions rejected before reaching the gateway.",
		}),
		simulationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_simulation_failures_total",
			Help:      "Gateway simulations that produced no outcome (timeout, cancellation).",
		}),
		gatewayLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_latency_seconds",
			Help:      "Time spent waiting for the simulated gateway.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 1.5, 2, 3, 5, 10},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.submissions,
		m.validationFailures,
		m.simulationFailures,
		m.gatewayLatency,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// RecordSubmission counts a stored transaction.
func (m *Metrics) RecordSubmission(tx domain.Transaction) {
	m.submissions.WithLabelValues(string(tx.Status), tx.ResponseCode).Inc()
}

// RecordValidationFailure counts a submission rejected before reaching the gateway.
func (m *Metrics) RecordValidationFailure() {
	m.validationFailures.Inc()
}

// RecordSimulationFailure counts a gateway call that produced no outcome.
func (m *Metrics) RecordSimulationFailure() {
	m.simulationFailures.Inc()
}

// ObserveGatewayLatency records how long one simulated charge took.
func (m *Metrics) ObserveGatewayLatency(d time.Duration) {
	m.gatewayLatency.Observe(d.Seconds())
}

// Middleware records request counts and latency keyed by route pattern, not raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
