package metrics

// Seasonality describes the periodic structure of a series: the average
// value at each phase offset within the period, the seasonal strength
// (variance of phase averages over total variance, clamped to 1), and
// whether the strength exceeds the 0.3 detection cutoff.
type Seasonality struct {
	PhaseAverages  []float64 `json:"phase_averages"`
	Strength       float64   `json:"strength"`
	HasSeasonality bool      `json:"has_seasonality"`
	PeakPhase      int       `json:"peak_phase"`
}

// AnalyzeSeasonality averages values at each phase offset (i, i+period,
// i+2*period, ...) and compares the spread of those averages to the spread
// of the whole series. The analysis needs at least two full periods; shorter
// series, a period below 2, or a zero-variance series yield a no-seasonality
// result.
func AnalyzeSeasonality(series []float64, period int) Envelope {
	raw := map[string]any{
		"period": period,
		"points": len(series),
	}

	none := Seasonality{PhaseAverages: []float64{}, Strength: 0, HasSeasonality: false}

	if period < 2 || len(series) < 2*period {
		return Envelope{Metric: "seasonality", Value: none, RawInputs: raw}
	}

	totalVar := variance(series)
	if totalVar == 0 {
		return Envelope{Metric: "seasonality", Value: none, RawInputs: raw}
	}

	averages := make([]float64, period)
	peak := 0
	for phase := 0; phase < period; phase++ {
		var sum float64
		var count int
		for i := phase; i < len(series); i += period {
			sum += series[i]
			count++
		}
		averages[phase] = sum / float64(count)
		if averages[phase] > averages[peak] {
			peak = phase
		}
	}

	strength := clamp(variance(averages)/totalVar, 0, 1)

	return Envelope{
		Metric: "seasonality",
		Value: Seasonality{
			PhaseAverages:  averages,
			Strength:       strength,
			HasSeasonality: strength > 0.3,
			PeakPhase:      peak,
		},
		RawInputs: raw,
	}
}
