package metrics

import (
	"mercator-hq/textutil/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CostMetrics tracks estimated spend.
//
// Metrics:
//   - <ns>_<sub>_cost_usd_total{model}
//   - <ns>_<sub>_cost_per_request_usd{model}
type CostMetrics struct {
	costTotal      *prometheus.CounterVec
	costPerRequest *prometheus.HistogramVec
}

// NewCostMetrics creates and registers cost metrics with the provided registry.
func NewCostMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *CostMetrics {
	cm := &CostMetrics{
		costTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cost_usd_total",
				Help:      "Total estimated cost in USD by model",
			},
			[]string{"model"},
		),

		costPerRequest: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cost_per_request_usd",
				Help:      "Estimated cost distribution per query in USD",
				Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"model"},
		),
	}

	registry.MustRegister(cm.costTotal, cm.costPerRequest)

	return cm
}

// RecordRequestCost records the estimated cost of a single query.
// Non-positive costs are ignored.
func (cm *CostMetrics) RecordRequestCost(model string, costUSD float64) {
	if costUSD <= 0 {
		return
	}

	cm.costTotal.WithLabelValues(model).Add(costUSD)
	cm.costPerRequest.WithLabelValues(model).Observe(costUSD)
}
