package metrics

import (
	"time"

	"mercator-hq/textutil/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks query volume, latency and token usage.
//
// Metrics:
//   - <ns>_<sub>_requests_total{model,status}
//   - <ns>_<sub>_request_duration_seconds{model}
//   - <ns>_<sub>_tokens_total{model,type}
//   - <ns>_<sub>_in_flight
type RequestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	tokensTotal     *prometheus.CounterVec
	inFlight        prometheus.Gauge
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of queries processed",
			},
			[]string{"model", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of queries in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"model"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "tokens_total",
				Help:      "Total number of tokens reported by the provider",
			},
			[]string{"model", "type"},
		),

		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "in_flight",
				Help:      "Number of queries currently being processed",
			},
		),
	}

	registry.MustRegister(
		rm.requestsTotal,
		rm.requestDuration,
		rm.tokensTotal,
		rm.inFlight,
	)

	return rm
}

// RecordRequest counts a query and observes its duration.
func (rm *RequestMetrics) RecordRequest(model, status string, duration time.Duration) {
	rm.requestsTotal.WithLabelValues(model, status).Inc()
	rm.requestDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordTokens records token counts separately for prompt and completion.
func (rm *RequestMetrics) RecordTokens(model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		rm.tokensTotal.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		rm.tokensTotal.WithLabelValues(model, "completion").Add(float64(completionTokens))
	}
}
