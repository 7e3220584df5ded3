package metrics

// SmoothMethod selects the smoothing filter.
type SmoothMethod string

const (
	SmoothSavgol      SmoothMethod = "savgol"
	SmoothMovingAvg   SmoothMethod = "moving_avg"
	SmoothExponential SmoothMethod = "exponential"
)

// SmoothSeries applies the named filter to the series. moving_avg is a
// centered rolling mean with the original values kept at the edges;
// exponential is a standard EWMA with alpha = 2/(window+1); savgol is a
// Savitzky-Golay quadratic fit. An unknown method, or a series shorter than
// the window for savgol, returns the series unchanged.
func SmoothSeries(series []float64, method SmoothMethod, window int) Envelope {
	if window < 2 {
		window = 7
	}

	var smoothed []float64
	switch method {
	case SmoothMovingAvg:
		smoothed = centeredMovingAverage(series, window)
	case SmoothExponential:
		smoothed = ewma(series, 2/(float64(window)+1))
	case SmoothSavgol:
		smoothed = savgol(series, window)
	default:
		smoothed = copyFloats(series)
	}

	return Envelope{
		Metric: "smooth_series",
		Value:  smoothed,
		RawInputs: map[string]any{
			"method": string(method),
			"window": window,
			"points": len(series),
		},
	}
}

// centeredMovingAverage computes a centered rolling mean. Edge positions
// whose centered window would fall outside the series keep their original
// value.
func centeredMovingAverage(series []float64, window int) []float64 {
	out := copyFloats(series)
	half := window / 2
	for i := half; i < len(series)-half; i++ {
		lo := i - half
		hi := i + half
		// An even window is right-shortened so the mean stays centered.
		if window%2 == 0 {
			hi--
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += series[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

// ewma computes a standard exponentially weighted moving average.
func ewma(series []float64, alpha float64) []float64 {
	out := make([]float64, len(series))
	if len(series) == 0 {
		return out
	}
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out
}

// savgol applies a Savitzky-Golay filter with a quadratic local polynomial.
// The window is forced odd; a series shorter than the window is returned
// unchanged. Edge positions reuse the nearest full window, evaluating the
// fitted polynomial at their own offset.
func savgol(series []float64, window int) []float64 {
	if window%2 == 0 {
		window++
	}
	if len(series) < window || window < 3 {
		return copyFloats(series)
	}

	half := window / 2
	out := make([]float64, len(series))
	for i := range series {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		if lo > len(series)-window {
			lo = len(series) - window
		}
		out[i] = quadraticFitAt(series[lo:lo+window], float64(i-lo))
	}
	return out
}

// quadraticFitAt fits y = a + b*x + c*x^2 to the window (x = 0..len-1) by
// least squares and evaluates it at position x0. Falls back to the window
// mean if the normal equations are singular.
func quadraticFitAt(win []float64, x0 float64) float64 {
	n := float64(len(win))
	var sx, sx2, sx3, sx4, sy, sxy, sx2y float64
	for i, y := range win {
		x := float64(i)
		x2 := x * x
		sx += x
		sx2 += x2
		sx3 += x2 * x
		sx4 += x2 * x2
		sy += y
		sxy += x * y
		sx2y += x2 * y
	}

	// Solve the 3x3 normal equations by Gaussian elimination.
	m := [3][4]float64{
		{n, sx, sx2, sy},
		{sx, sx2, sx3, sxy},
		{sx2, sx3, sx4, sx2y},
	}
	for col := 0; col < 3; col++ {
		// Partial pivot.
		pivot := col
		for r := col + 1; r < 3; r++ {
			if abs(m[r][col]) > abs(m[pivot][col]) {
				pivot = r
			}
		}
		m[col], m[pivot] = m[pivot], m[col]
		if abs(m[col][col]) < 1e-12 {
			return mean(win)
		}
		for r := 0; r < 3; r++ {
			if r == col {
				continue
			}
			f := m[r][col] / m[col][col]
			for c := col; c < 4; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}
	a := m[0][3] / m[0][0]
	b := m[1][3] / m[1][1]
	c := m[2][3] / m[2][2]
	return a + b*x0 + c*x0*x0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func copyFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
