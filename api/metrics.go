package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/0xalexb/confd/resolve"
)

const metricsNamespace = "confd"

// Metrics records lookup outcomes and latency.
type Metrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the lookup collectors, plus Go runtime and process collectors,
// on a fresh registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	metrics := &Metrics{
		registry: registry,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Config lookups by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: metricsNamespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time spent resolving a config lookup.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"outcome"}),
	}

	for _, collector := range []prometheus.Collector{
		metrics.lookups,
		metrics.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	} {
		err := registry.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return metrics, nil
}

// Observe records one lookup. It is safe to call on a nil *Metrics.
func (m *Metrics) Observe(kind resolve.Kind, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.lookups.WithLabelValues(kind.String()).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}) //nolint:exhaustruct
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
