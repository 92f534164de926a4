package metrics

import (
	"time"

	"mercator-hq/textutil/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics tracks calls to the chat-completions provider.
//
// Metrics:
//   - <ns>_<sub>_provider_latency_seconds{model}
//   - <ns>_<sub>_provider_errors_total{model,status_code}
type ProviderMetrics struct {
	latency *prometheus.HistogramVec
	errors  *prometheus.CounterVec
}

// NewProviderMetrics creates and registers provider metrics with the provided registry.
func NewProviderMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *ProviderMetrics {
	pm := &ProviderMetrics{
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_latency_seconds",
				Help:      "Provider API call latency in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"model"},
		),

		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_errors_total",
				Help:      "Total number of failed provider calls by HTTP status",
			},
			[]string{"model", "status_code"},
		),
	}

	registry.MustRegister(pm.latency, pm.errors)

	return pm
}

// RecordLatency observes one provider call.
func (pm *ProviderMetrics) RecordLatency(model string, latency time.Duration) {
	pm.latency.WithLabelValues(model).Observe(latency.Seconds())
}

// RecordError counts one failed provider call.
func (pm *ProviderMetrics) RecordError(model, statusCode string) {
	pm.errors.WithLabelValues(model, statusCode).Inc()
}
