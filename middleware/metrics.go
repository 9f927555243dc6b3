package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyasap_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hobbyasap_http_request_duration_seconds",
			Help:    "HTTP request latency by route. Model-backed routes dominate the upper buckets.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"route"},
	)

	tokensRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hobbyasap_llm_tokens_recorded_total",
			Help: "Total LLM tokens recorded against the daily budget.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, tokensRecorded)
}

// ObserveTokens adds n to the process-local token counter. The authoritative
// budget counter lives in Redis; this one only feeds dashboards.
func ObserveTokens(n int64) {
	if n > 0 {
		tokensRecorded.Add(float64(n))
	}
}

// RequestMetrics records per-route request counts and latencies.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, c.Request.Method,
			strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
