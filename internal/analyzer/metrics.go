package analyzer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the analyzer service.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec
	Duration      prometheus.Histogram
}

// NewMetrics creates and registers Prometheus metrics for the analyzer.
//
// This function uses sync.Once to ensure metrics are only registered once
// globally, preventing "duplicate metrics collector registration" panics.
//
// Metrics:
//   - analyzer_requests_total{outcome} - Analysis passes by outcome (ok, error)
//   - analyzer_duration_seconds - Histogram of full-pass durations
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "analyzer_requests_total",
					Help: "Total number of analysis passes",
				},
				[]string{"outcome"},
			),

			Duration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "analyzer_duration_seconds",
					Help:    "Duration of full analysis passes in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
		}
	})
	return globalMetrics
}
