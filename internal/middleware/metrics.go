package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bizledger_http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bizledger_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	crossTenantDenialsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bizledger_cross_tenant_denials_total",
			Help: "Number of write requests denied because the target record belongs to another tenant.",
		},
	)
)

// MetricsMiddleware records request counts and latencies. The route template
// (not the raw path) is used as a label to keep cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// CountCrossTenantDenial increments the isolation denial counter. Handlers
// call it when a write is refused for targeting another tenant's record.
func CountCrossTenantDenial() {
	crossTenantDenialsTotal.Inc()
}
