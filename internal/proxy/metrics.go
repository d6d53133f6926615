// Package proxy provides transparent HTTP forwarding to backend services.
package proxy

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records forwarding outcomes.
type MetricsRecorder interface {
	RecordForward(service, method string, status int, duration time.Duration)
	RecordError(service string)
}

type noopMetrics struct{}

func (noopMetrics) RecordForward(string, string, int, time.Duration) {}
func (noopMetrics) RecordError(string)                               {}

// Metrics contains Prometheus metrics for proxy operations.
type Metrics struct {
	forwardsTotal   *prometheus.CounterVec
	forwardDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// GetMetrics returns the singleton proxy metrics instance.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			forwardsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "gateway",
					Subsystem: "proxy",
					Name:      "forwards_total",
					Help:      "Total number of forwarded requests",
				},
				[]string{"service", "method", "status"},
			),
			forwardDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "gateway",
					Subsystem: "proxy",
					Name:      "forward_duration_seconds",
					Help:      "Duration of forwarded requests",
					Buckets: []float64{
						.001, .005, .01, .025, .05,
						.1, .25, .5, 1, 2.5, 5, 10,
					},
				},
				[]string{"service"},
			),
			errorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "gateway",
					Subsystem: "proxy",
					Name:      "errors_total",
					Help:      "Total number of unreachable-backend errors",
				},
				[]string{"service"},
			),
		}
	})
	return metricsInstance
}

// RecordForward records one relayed request.
func (m *Metrics) RecordForward(service, method string, status int, duration time.Duration) {
	m.forwardsTotal.WithLabelValues(service, method, strconv.Itoa(status)).Inc()
	m.forwardDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// RecordError records one transport failure.
func (m *Metrics) RecordError(service string) {
	m.errorsTotal.WithLabelValues(service).Inc()
}
