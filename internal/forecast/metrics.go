package forecast

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the forecast engine.
type Metrics struct {
	ForecastsTotal   *prometheus.CounterVec
	AdjustmentsTotal *prometheus.CounterVec
	ForecastDuration prometheus.Histogram
}

// NewMetrics creates and registers Prometheus metrics for the forecast
// engine.
//
// This function uses sync.Once to ensure metrics are only registered once
// globally, preventing "duplicate metrics collector registration" panics.
//
// Metrics:
//   - forecast_requests_total{outcome} - Forecasts by outcome (ok, insufficient_data)
//   - forecast_adjustments_total{factor} - Behavioral factors applied (or failed)
//   - forecast_duration_seconds - Histogram of forecast computation times
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ForecastsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_requests_total",
					Help: "Total number of forecast requests",
				},
				[]string{"outcome"},
			),

			AdjustmentsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_adjustments_total",
					Help: "Total number of behavioral adjustment factors applied",
				},
				[]string{"factor"},
			),

			ForecastDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "forecast_duration_seconds",
					Help:    "Duration of forecast computations in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
		}
	})
	return globalMetrics
}
