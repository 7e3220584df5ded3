package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChangePoints(t *testing.T) {
	t.Run("level shift is detected at the shift index", func(t *testing.T) {
		// Small jitter, then a single large jump between index 5 and 6.
		series := []float64{50, 51, 49, 50, 51, 50, 90, 91, 89, 90}
		env := DetectChangePoints(series, 2.0)
		points, ok := env.Value.([]ChangePoint)
		require.True(t, ok)
		require.Len(t, points, 1)
		assert.Equal(t, 6, points[0].Index)
		assert.Equal(t, "increase", points[0].Direction)
		assert.Greater(t, points[0].Magnitude, 2.0)
		assert.InDelta(t, 40.0, points[0].Delta, 1e-9)
	})

	t.Run("drop yields a decrease", func(t *testing.T) {
		series := []float64{80, 81, 79, 80, 30, 31, 29, 30}
		env := DetectChangePoints(series, 2.0)
		points := env.Value.([]ChangePoint)
		require.Len(t, points, 1)
		assert.Equal(t, "decrease", points[0].Direction)
		assert.Negative(t, points[0].Delta)
	})

	t.Run("constant differences yield no change points", func(t *testing.T) {
		env := DetectChangePoints([]float64{10, 20, 30, 40, 50}, 2.0)
		assert.Empty(t, env.Value.([]ChangePoint))
		assert.Equal(t, 0.0, env.RawInputs["diff_std"])
	})

	t.Run("fewer than three points yield no change points", func(t *testing.T) {
		for _, series := range [][]float64{nil, {5}, {5, 50}} {
			env := DetectChangePoints(series, 2.0)
			assert.Empty(t, env.Value.([]ChangePoint))
		}
	})

	t.Run("threshold at or below zero defaults to two", func(t *testing.T) {
		env := DetectChangePoints([]float64{1, 2, 3}, -1)
		assert.Equal(t, 2.0, env.RawInputs["threshold"])
	})

	t.Run("lower threshold finds more points", func(t *testing.T) {
		series := []float64{50, 52, 48, 70, 49, 51, 30, 50, 52}
		strict := DetectChangePoints(series, 2.5).Value.([]ChangePoint)
		loose := DetectChangePoints(series, 1.0).Value.([]ChangePoint)
		assert.GreaterOrEqual(t, len(loose), len(strict))
	})
}
