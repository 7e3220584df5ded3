package insights

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the insights engine.
type Metrics struct {
	RulesEvaluatedTotal prometheus.Counter
	InsightsTotal       *prometheus.CounterVec
	RuleFailuresTotal   *prometheus.CounterVec
	EvaluationDuration  prometheus.Histogram
}

// NewMetrics creates and registers Prometheus metrics for the insights
// engine.
//
// This function uses sync.Once to ensure metrics are only registered once
// globally, preventing "duplicate metrics collector registration" panics.
//
// All metrics are prefixed with "insights_" for namespacing.
//
// Metrics:
//   - insights_rules_evaluated_total - Count of rule evaluations
//   - insights_generated_total{type} - Count of insights by type
//   - insights_rule_failures_total{rule} - Count of contained rule panics
//   - insights_evaluation_duration_seconds - Histogram of batch durations
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RulesEvaluatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "insights_rules_evaluated_total",
					Help: "Total number of insight rule evaluations",
				},
			),

			InsightsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insights_generated_total",
					Help: "Total number of insights generated",
				},
				[]string{"type"},
			),

			RuleFailuresTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insights_rule_failures_total",
					Help: "Total number of insight rules that panicked and were skipped",
				},
				[]string{"rule"},
			),

			EvaluationDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "insights_evaluation_duration_seconds",
					Help:    "Duration of full rule-battery evaluations in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
		}
	})
	return globalMetrics
}
