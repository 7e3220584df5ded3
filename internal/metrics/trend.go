package metrics

// TrendFit is an ordinary least squares line fit.
type TrendFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// TrendLine fits y = slope*x + intercept by ordinary least squares.
// Fewer than two points yield an all-zero fit; when y has no variance the
// fit is a flat line with R-squared 0.
func TrendLine(x, y []float64) Envelope {
	fit := FitOLS(x, y)
	return Envelope{
		Metric: "trend_line",
		Value:  fit,
		RawInputs: map[string]any{
			"points": minInt(len(x), len(y)),
		},
	}
}

// FitOLS computes the least squares fit, truncating unequal-length inputs
// to the shorter series.
func FitOLS(x, y []float64) TrendFit {
	n := minInt(len(x), len(y))
	if n < 2 {
		return TrendFit{}
	}
	x, y = x[:n], y[:n]

	mx, my := mean(x), mean(y)
	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	if sxx == 0 {
		// Vertical stack of points: no usable fit.
		return TrendFit{}
	}

	slope := sxy / sxx
	intercept := my - slope*mx

	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		dy := y[i] - my
		ssTot += dy * dy
		res := y[i] - (slope*x[i] + intercept)
		ssRes += res * res
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
		r2 = clamp(r2, 0, 1)
	}

	return TrendFit{Slope: slope, Intercept: intercept, RSquared: r2}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TimeIndex returns 0..n-1 as floats, the x axis for time-indexed fits.
func TimeIndex(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
