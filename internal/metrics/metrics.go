// Package metrics exposes Prometheus collectors for the smoothie service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels used by the counters below.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
	OutcomeRejected    = "rejected"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smoothie",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smoothie",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	catalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smoothie",
			Subsystem: "catalog",
			Name:      "loads_total",
			Help:      "Catalog loads by outcome.",
		},
		[]string{"outcome"},
	)

	nutritionLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smoothie",
			Subsystem: "nutrition",
			Name:      "lookups_total",
			Help:      "Fruityvice lookups by outcome.",
		},
		[]string{"outcome"},
	)

	nutritionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "smoothie",
			Subsystem: "nutrition",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of Fruityvice lookups.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	orderSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smoothie",
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Order submissions by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		catalogLoads,
		nutritionLookups,
		nutritionDuration,
		orderSubmissions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordCatalogLoad(outcome string) {
	catalogLoads.WithLabelValues(outcome).Inc()
}

func RecordNutritionLookup(outcome string, took time.Duration) {
	nutritionLookups.WithLabelValues(outcome).Inc()
	nutritionDuration.Observe(took.Seconds())
}

func RecordOrderSubmission(outcome string) {
	orderSubmissions.WithLabelValues(outcome).Inc()
}
