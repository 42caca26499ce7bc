// Package metrics exposes Prometheus instrumentation for the API and the
// upstream providers.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee_scout",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffee_scout",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	// Upstream provider metrics
	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffee_scout",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Latency of calls to upstream providers",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"provider"})

	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee_scout",
		Subsystem: "provider",
		Name:      "errors_total",
		Help:      "Total failed calls to upstream providers",
	}, []string{"provider"})

	// Recommendation metrics
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee_scout",
		Subsystem: "search",
		Name:      "total",
		Help:      "Total recommendation searches by mood and outcome",
	}, []string{"mood", "outcome"})

	FallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee_scout",
		Subsystem: "search",
		Name:      "fallbacks_total",
		Help:      "Searches that continued on a default after a collaborator was unavailable",
	}, []string{"kind"})

	ResultsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coffee_scout",
		Subsystem: "search",
		Name:      "results_returned",
		Help:      "Number of ranked places returned per search",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
	})

	StaleResultsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coffee_scout",
		Subsystem: "search",
		Name:      "stale_results_discarded_total",
		Help:      "Results dropped because a newer search had already been published",
	})
)

// ObserveProvider records the latency and outcome of one provider call.
func ObserveProvider(provider string, start time.Time, err error) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		ProviderErrors.WithLabelValues(provider).Inc()
	}
}

// Middleware records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler returns a gin handler serving the Prometheus /metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
