package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendLine(t *testing.T) {
	t.Run("exact linear fit", func(t *testing.T) {
		x := []float64{0, 1, 2, 3, 4}
		y := []float64{1, 3, 5, 7, 9} // y = 2x + 1
		fit := TrendLine(x, y).Value.(TrendFit)
		assert.InDelta(t, 2.0, fit.Slope, 1e-9)
		assert.InDelta(t, 1.0, fit.Intercept, 1e-9)
		assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	})

	t.Run("fewer than two points yields zeros", func(t *testing.T) {
		assert.Equal(t, TrendFit{}, TrendLine(nil, nil).Value.(TrendFit))
		assert.Equal(t, TrendFit{}, TrendLine([]float64{1}, []float64{2}).Value.(TrendFit))
	})

	t.Run("zero variance in y gives flat line with zero r squared", func(t *testing.T) {
		x := []float64{0, 1, 2, 3}
		y := []float64{5, 5, 5, 5}
		fit := TrendLine(x, y).Value.(TrendFit)
		assert.InDelta(t, 0.0, fit.Slope, 1e-9)
		assert.InDelta(t, 5.0, fit.Intercept, 1e-9)
		assert.Equal(t, 0.0, fit.RSquared)
	})

	t.Run("zero variance in x yields zeros", func(t *testing.T) {
		x := []float64{2, 2, 2}
		y := []float64{1, 5, 9}
		assert.Equal(t, TrendFit{}, TrendLine(x, y).Value.(TrendFit))
	})

	t.Run("unequal lengths are truncated", func(t *testing.T) {
		x := []float64{0, 1, 2, 3, 4, 5, 6}
		y := []float64{0, 2, 4}
		fit := TrendLine(x, y).Value.(TrendFit)
		assert.InDelta(t, 2.0, fit.Slope, 1e-9)
	})

	t.Run("noisy data has r squared below one", func(t *testing.T) {
		x := []float64{0, 1, 2, 3, 4, 5}
		y := []float64{1, 4, 2, 6, 5, 9}
		fit := TrendLine(x, y).Value.(TrendFit)
		require.Greater(t, fit.Slope, 0.0)
		assert.Greater(t, fit.RSquared, 0.0)
		assert.Less(t, fit.RSquared, 1.0)
	})
}

func TestTimeIndex(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, TimeIndex(3))
	assert.Empty(t, TimeIndex(0))
}
