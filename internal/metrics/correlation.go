package metrics

import "math"

// CorrelationMethod selects the correlation coefficient.
type CorrelationMethod string

const (
	Pearson  CorrelationMethod = "pearson"
	Spearman CorrelationMethod = "spearman"
)

// Correlation is a pairwise correlation result. Significant is true when
// PValue < 0.05.
type Correlation struct {
	Coefficient float64 `json:"coefficient"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
	N           int     `json:"n"`
}

// Correlate computes the correlation between two series with a two-sided
// Student-t p-value. Series of unequal length are truncated to the shorter
// length. Pairs with fewer than three overlapping points, or where either
// series has zero variance, yield (0, p=1, not significant) rather than NaN.
func Correlate(x, y []float64, method CorrelationMethod) Correlation {
	n := minInt(len(x), len(y))
	if n < 3 {
		return Correlation{Coefficient: 0, PValue: 1, Significant: false, N: n}
	}
	x, y = x[:n], y[:n]

	if variance(x) == 0 || variance(y) == 0 {
		return Correlation{Coefficient: 0, PValue: 1, Significant: false, N: n}
	}

	if method == Spearman {
		x, y = ranks(x), ranks(y)
	}

	r := pearson(x, y)
	p := correlationPValue(r, n)

	return Correlation{
		Coefficient: r,
		PValue:      p,
		Significant: p < 0.05,
		N:           n,
	}
}

// CorrelationMatrix computes pairwise correlations between every named
// series. The diagonal is always (1.0, p=0, significant) for any series
// correlated with itself. The envelope value is a map keyed by series name
// on both axes.
func CorrelationMatrix(series map[string][]float64, method CorrelationMethod) Envelope {
	if method != Spearman {
		method = Pearson
	}

	matrix := make(map[string]map[string]Correlation, len(series))
	for a, xs := range series {
		row := make(map[string]Correlation, len(series))
		for b, ys := range series {
			if a == b {
				row[b] = Correlation{Coefficient: 1, PValue: 0, Significant: true, N: len(xs)}
				continue
			}
			row[b] = Correlate(xs, ys, method)
		}
		matrix[a] = row
	}

	return Envelope{
		Metric: "correlation_matrix",
		Value:  matrix,
		RawInputs: map[string]any{
			"method": string(method),
			"series": len(series),
		},
	}
}

// pearson computes the Pearson correlation coefficient of equal-length
// series with nonzero variance.
func pearson(x, y []float64) float64 {
	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	denom := math.Sqrt(sxx * syy)
	if denom == 0 {
		return 0
	}
	return clamp(sxy/denom, -1, 1)
}

// correlationPValue converts a coefficient to a two-sided p-value via the
// t statistic with n-2 degrees of freedom.
func correlationPValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	return studentTPValue(t, df)
}
