package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type httpMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

var (
	httpMetricsInstance *httpMetrics
	httpMetricsOnce     sync.Once
)

func getHTTPMetrics() *httpMetrics {
	httpMetricsOnce.Do(func() {
		httpMetricsInstance = &httpMetrics{
			requestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "gateway",
					Subsystem: "http",
					Name:      "requests_total",
					Help:      "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			requestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "gateway",
					Subsystem: "http",
					Name:      "request_duration_seconds",
					Help:      "Duration of HTTP requests",
					Buckets: []float64{
						.001, .005, .01, .025, .05,
						.1, .25, .5, 1, 2.5, 5, 10,
					},
				},
				[]string{"method", "path"},
			),
			inFlight: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "gateway",
					Subsystem: "http",
					Name:      "in_flight_requests",
					Help:      "Number of HTTP requests currently being served",
				},
			),
		}
	})
	return httpMetricsInstance
}

// Metrics returns a middleware recording per-request Prometheus
// metrics. The route template (not the raw URL) is used as the path
// label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	m := getHTTPMetrics()

	return func(c *gin.Context) {
		start := time.Now()
		m.inFlight.Inc()

		c.Next()

		m.inFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
