package backend

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records backend call metrics.
type MetricsRecorder interface {
	RecordCall(service, method string, status int, duration time.Duration)
	RecordError(service, errorType string)
}

// Metrics holds Prometheus metrics for backend calls.
type Metrics struct {
	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	errorsTotal  *prometheus.CounterVec
}

var (
	backendMetrics     *Metrics
	backendMetricsOnce sync.Once
)

// GetMetrics returns the singleton backend metrics instance.
func GetMetrics() *Metrics {
	backendMetricsOnce.Do(func() {
		backendMetrics = newMetrics()
	})
	return backendMetrics
}

func newMetrics() *Metrics {
	return &Metrics{
		callsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gateway",
				Subsystem: "backend",
				Name:      "calls_total",
				Help:      "Total number of backend service calls",
			},
			[]string{"service", "method", "status"},
		),
		callDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gateway",
				Subsystem: "backend",
				Name:      "call_duration_seconds",
				Help:      "Backend service call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "method"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gateway",
				Subsystem: "backend",
				Name:      "errors_total",
				Help:      "Total number of backend call errors by kind",
			},
			[]string{"service", "type"},
		),
	}
}

// RecordCall records a completed backend call.
func (m *Metrics) RecordCall(service, method string, status int, duration time.Duration) {
	m.callsTotal.WithLabelValues(service, method, strconv.Itoa(status)).Inc()
	m.callDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordError records a failed backend call.
func (m *Metrics) RecordError(service, errorType string) {
	m.errorsTotal.WithLabelValues(service, errorType).Inc()
}
