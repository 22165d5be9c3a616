// pkg/metrics/prometheus.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus instruments for the transfer service.
// It owns its registry so tests can create independent collectors.
type Collector struct {
	registry           *prometheus.Registry
	transfersCompleted prometheus.Counter
	transfersFailed    prometheus.Counter
	transferDuration   prometheus.Histogram
}

// NewCollector creates a Collector with a fresh registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		transfersCompleted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "transfers_completed_total",
			Help: "Total number of completed money transfers",
		}),
		transfersFailed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "transfers_failed_total",
			Help: "Total number of failed money transfers",
		}),
		transferDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "send_money_duration_seconds",
			Help:    "Time taken to complete a money transfer",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordTransfer records the outcome and duration of one transfer attempt.
func (c *Collector) RecordTransfer(duration time.Duration, success bool) {
	if success {
		c.transfersCompleted.Inc()
	} else {
		c.transfersFailed.Inc()
	}
	c.transferDuration.Observe(duration.Seconds())
}

// Handler exposes the collector's registry for a /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
