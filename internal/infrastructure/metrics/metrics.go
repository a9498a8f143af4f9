package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Business operations per entity, e.g. ("labor_entry", "create")
	DomainOperations *prometheus.CounterVec

	// Running total recomputation, labelled by cost category
	CostRecomputeDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. Passing a fresh registry keeps tests
// isolated from the default one.
func New(prefix string, reg *prometheus.Registry) *Metrics {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}
	factory := promauto.With(registerer)

	return &Metrics{
		gatherer: gatherer,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		DomainOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_domain_operations_total",
				Help: "Total number of business mutations by entity and operation",
			},
			[]string{"entity", "operation"},
		),
		CostRecomputeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_cost_recompute_duration_seconds",
				Help:    "Duration of job running total recomputation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"category"},
		),
	}
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordOperation increments the counter for a business mutation.
func (m *Metrics) RecordOperation(entity, operation string) {
	if m == nil {
		return
	}
	m.DomainOperations.WithLabelValues(entity, operation).Inc()
}

// RecordAuthAttempt counts a login attempt.
func (m *Metrics) RecordAuthAttempt(success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.AuthAttempts.WithLabelValues(outcome).Inc()
}

// TrackCostRecompute returns a function that records the recompute duration.
func (m *Metrics) TrackCostRecompute(category string) func() {
	start := time.Now()
	return func() {
		if m == nil {
			return
		}
		m.CostRecomputeDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	}
}
