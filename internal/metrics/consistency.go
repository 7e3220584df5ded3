package metrics

import (
	"time"
)

// RollingConsistency scores each day as the trailing-window mean of the
// success series, as a percentage. The window shrinks at the start of the
// series down to a single sample, so every day gets a score. A window below
// 1 falls back to the default of 7 days.
func RollingConsistency(series []bool, window int) Envelope {
	if window < 1 {
		window = 7
	}

	scores := make([]float64, len(series))
	for i := range series {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var hits int
		for j := lo; j <= i; j++ {
			if series[j] {
				hits++
			}
		}
		scores[i] = float64(hits) / float64(i-lo+1) * 100
	}

	return Envelope{
		Metric: "rolling_consistency",
		Value:  scores,
		RawInputs: map[string]any{
			"window": window,
			"days":   len(series),
		},
	}
}

// IntervalConsistency scores how regularly spaced the completion dates are,
// using the coefficient of variation of the gaps between successive dates:
// score = clamp(0, 100, 100*(1-CV)). Evenly spaced completions score 100;
// highly irregular ones decay toward 0. Fewer than two dated events yield 0.
func IntervalConsistency(dates []time.Time) Envelope {
	if len(dates) < 2 {
		return Envelope{
			Metric: "interval_consistency",
			Value:  0.0,
			RawInputs: map[string]any{
				"events": len(dates),
			},
		}
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sortTimes(sorted)

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}

	m := mean(gaps)
	score := 0.0
	cv := 0.0
	if m > 0 {
		cv = sampleStdDev(gaps) / m
		score = clamp(100*(1-cv), 0, 100)
	}

	return Envelope{
		Metric: "interval_consistency",
		Value:  score,
		RawInputs: map[string]any{
			"events":   len(dates),
			"mean_gap": m,
			"cv":       cv,
		},
	}
}
