package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothSeries(t *testing.T) {
	t.Run("moving average keeps edges and centers interior", func(t *testing.T) {
		series := []float64{10, 20, 30, 40, 50}
		env := SmoothSeries(series, SmoothMovingAvg, 3)
		out, ok := env.Value.([]float64)
		require.True(t, ok)
		require.Len(t, out, 5)
		assert.Equal(t, 10.0, out[0])
		assert.Equal(t, 50.0, out[4])
		assert.InDelta(t, 20.0, out[1], 1e-9)
		assert.InDelta(t, 30.0, out[2], 1e-9)
	})

	t.Run("exponential first value is the first observation", func(t *testing.T) {
		series := []float64{10, 10, 40}
		env := SmoothSeries(series, SmoothExponential, 3)
		out := env.Value.([]float64)
		// alpha = 2/(3+1) = 0.5
		assert.InDelta(t, 10.0, out[0], 1e-9)
		assert.InDelta(t, 10.0, out[1], 1e-9)
		assert.InDelta(t, 25.0, out[2], 1e-9)
	})

	t.Run("savgol reproduces a quadratic exactly", func(t *testing.T) {
		series := make([]float64, 12)
		for i := range series {
			x := float64(i)
			series[i] = 3 + 2*x + 0.5*x*x
		}
		env := SmoothSeries(series, SmoothSavgol, 5)
		out := env.Value.([]float64)
		for i := range series {
			assert.InDelta(t, series[i], out[i], 1e-6, "index %d", i)
		}
	})

	t.Run("savgol shorter than window is unchanged", func(t *testing.T) {
		series := []float64{1, 9, 2}
		env := SmoothSeries(series, SmoothSavgol, 7)
		assert.Equal(t, series, env.Value.([]float64))
	})

	t.Run("unknown method returns the series unchanged", func(t *testing.T) {
		series := []float64{5, 1, 7}
		env := SmoothSeries(series, SmoothMethod("loess"), 3)
		out := env.Value.([]float64)
		assert.Equal(t, series, out)
		// The result is a copy, not an alias.
		out[0] = 99
		assert.Equal(t, 5.0, series[0])
	})

	t.Run("window below two defaults to seven", func(t *testing.T) {
		env := SmoothSeries([]float64{1, 2, 3}, SmoothMovingAvg, 0)
		assert.Equal(t, 7, env.RawInputs["window"])
	})

	t.Run("empty series", func(t *testing.T) {
		for _, method := range []SmoothMethod{SmoothSavgol, SmoothMovingAvg, SmoothExponential} {
			env := SmoothSeries(nil, method, 5)
			assert.Empty(t, env.Value.([]float64), string(method))
		}
	})
}

func TestSmoothingPreservesLength(t *testing.T) {
	series := []float64{82, 71, 90, 65, 88, 73, 95, 60, 84, 77, 91, 68}
	for _, method := range []SmoothMethod{SmoothSavgol, SmoothMovingAvg, SmoothExponential} {
		env := SmoothSeries(series, method, 5)
		assert.Len(t, env.Value.([]float64), len(series), string(method))
	}
}
