// Package forecast produces a statistical baseline forecast of daily
// completion rates and optionally corrects it with behavioral factors
// derived from the insight list. The baseline is OLS over a time index with
// leverage-adjusted prediction intervals; corrections read exclusively from
// insight evidence and never re-derive raw statistics.
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/metrics"
)

// MinHistoryDays is the minimum number of daily-rate points a forecast
// needs. Shorter histories yield a Success=false result, not an error.
const MinHistoryDays = 7

// Trend labels for the fitted slope direction.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// slopeCutoff separates a real direction from noise, in rate points per day.
const slopeCutoff = 0.5

// Result is a completion-rate forecast. When Success is false only Error and
// DaysAnalyzed are meaningful. Predictions and both bounds are clipped to
// [0,100]; StartDate is the first forecast day.
type Result struct {
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	DaysAnalyzed int    `json:"days_analyzed"`

	StartDate   time.Time `json:"start_date,omitempty"`
	Predictions []float64 `json:"predictions,omitempty"`
	UpperBound  []float64 `json:"upper_bound,omitempty"`
	LowerBound  []float64 `json:"lower_bound,omitempty"`
	Confidence  float64   `json:"confidence"`
	Trend       string    `json:"trend,omitempty"`
	Slope       float64   `json:"slope"`

	// BehavioralFactors and AdjustmentReasons are populated by
	// ApplyBehavioralAdjustment.
	BehavioralFactors map[string]float64 `json:"behavioral_factors,omitempty"`
	AdjustmentReasons []string           `json:"adjustment_reasons,omitempty"`
}

// StatisticalForecast fits an OLS trend to the history and extrapolates
// daysAhead daily rates with a 95% prediction interval. The interval's
// standard error is leverage-adjusted and scaled by a data-quality factor
// 1 - min(variance/1000, 0.5); reported confidence is R² times that factor.
//
// Fewer than MinHistoryDays points yield {Success: false, DaysAnalyzed: n}.
func StatisticalForecast(history []habit.DailyRate, daysAhead int) Result {
	m := NewMetrics()
	start := time.Now()
	defer func() {
		m.ForecastDuration.Observe(time.Since(start).Seconds())
	}()

	n := len(history)
	if n < MinHistoryDays {
		m.ForecastsTotal.WithLabelValues("insufficient_data").Inc()
		return Result{
			Success:      false,
			Error:        fmt.Sprintf("insufficient data: need at least %d days, got %d", MinHistoryDays, n),
			DaysAnalyzed: n,
		}
	}
	if daysAhead < 1 {
		daysAhead = 7
	}

	y := make([]float64, n)
	for i, dr := range history {
		y[i] = dr.Rate
	}
	x := metrics.TimeIndex(n)
	fit := metrics.FitOLS(x, y)

	// Residual standard error and the x spread for the leverage term.
	var sse, sxx float64
	xMean := float64(n-1) / 2
	for i := range y {
		resid := y[i] - (fit.Intercept + fit.Slope*x[i])
		sse += resid * resid
		sxx += (x[i] - xMean) * (x[i] - xMean)
	}
	residSE := math.Sqrt(sse / float64(n-2))

	variance := sampleVariance(y)
	dataQuality := 1 - math.Min(variance/1000, 0.5)

	predictions := make([]float64, daysAhead)
	upper := make([]float64, daysAhead)
	lower := make([]float64, daysAhead)
	for i := 0; i < daysAhead; i++ {
		x0 := float64(n + i)
		pred := fit.Intercept + fit.Slope*x0

		leverage := 1 + 1/float64(n)
		if sxx > 0 {
			leverage += (x0 - xMean) * (x0 - xMean) / sxx
		}
		margin := 1.96 * residSE * math.Sqrt(leverage) * dataQuality

		predictions[i] = clip(pred)
		upper[i] = clip(pred + margin)
		lower[i] = clip(pred - margin)
	}

	trend := TrendStable
	switch {
	case fit.Slope > slopeCutoff:
		trend = TrendIncreasing
	case fit.Slope < -slopeCutoff:
		trend = TrendDecreasing
	}

	m.ForecastsTotal.WithLabelValues("ok").Inc()
	return Result{
		Success:      true,
		DaysAnalyzed: n,
		StartDate:    history[n-1].Date.AddDate(0, 0, 1),
		Predictions:  predictions,
		UpperBound:   upper,
		LowerBound:   lower,
		Confidence:   clampUnit(fit.RSquared * dataQuality),
		Trend:        trend,
		Slope:        fit.Slope,
	}
}

// sampleVariance is the n-1 variance of the series, 0 below two points.
func sampleVariance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var m float64
	for _, v := range xs {
		m += v
	}
	m /= float64(len(xs))
	var sum float64
	for _, v := range xs {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(xs)-1)
}

// clip bounds a rate to [0,100].
func clip(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
