package metrics

// ChangePoint marks an abrupt shift in a series: the index where it occurs,
// the direction of the shift, and its magnitude in standard deviations of
// the first differences.
type ChangePoint struct {
	Index     int     `json:"index"`
	Direction string  `json:"direction"` // "increase" or "decrease"
	Magnitude float64 `json:"magnitude"`
	Delta     float64 `json:"delta"`
}

// DetectChangePoints finds points whose first difference exceeds threshold
// standard deviations of all first differences. A threshold at or below 0
// defaults to 2.0. Series with fewer than three points, or with constant
// differences, contain no change points.
func DetectChangePoints(series []float64, threshold float64) Envelope {
	if threshold <= 0 {
		threshold = 2.0
	}

	raw := map[string]any{
		"threshold": threshold,
		"points":    len(series),
	}

	if len(series) < 3 {
		return Envelope{Metric: "change_points", Value: []ChangePoint{}, RawInputs: raw}
	}

	diffs := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		diffs[i-1] = series[i] - series[i-1]
	}

	sd := stdDev(diffs)
	raw["diff_std"] = sd
	if sd == 0 {
		return Envelope{Metric: "change_points", Value: []ChangePoint{}, RawInputs: raw}
	}

	points := []ChangePoint{}
	for i, d := range diffs {
		if abs(d) > threshold*sd {
			direction := "increase"
			if d < 0 {
				direction = "decrease"
			}
			points = append(points, ChangePoint{
				Index:     i + 1,
				Direction: direction,
				Magnitude: abs(d) / sd,
				Delta:     d,
			})
		}
	}

	return Envelope{Metric: "change_points", Value: points, RawInputs: raw}
}
