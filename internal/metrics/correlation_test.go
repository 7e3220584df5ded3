package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelate(t *testing.T) {
	t.Run("perfect positive correlation", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{2, 4, 6, 8, 10}
		c := Correlate(x, y, Pearson)
		assert.InDelta(t, 1.0, c.Coefficient, 1e-9)
		assert.Less(t, c.PValue, 0.05)
		assert.True(t, c.Significant)
	})

	t.Run("perfect negative correlation", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{10, 8, 6, 4, 2}
		c := Correlate(x, y, Pearson)
		assert.InDelta(t, -1.0, c.Coefficient, 1e-9)
		assert.True(t, c.Significant)
	})

	t.Run("fewer than three overlapping points", func(t *testing.T) {
		c := Correlate([]float64{1, 2}, []float64{3, 4}, Pearson)
		assert.Equal(t, Correlation{Coefficient: 0, PValue: 1, Significant: false, N: 2}, c)
	})

	t.Run("zero variance yields the neutral result", func(t *testing.T) {
		c := Correlate([]float64{5, 5, 5, 5}, []float64{1, 2, 3, 4}, Pearson)
		assert.Equal(t, 0.0, c.Coefficient)
		assert.Equal(t, 1.0, c.PValue)
		assert.False(t, c.Significant)
	})

	t.Run("unequal lengths truncate to shorter", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 100, -3}
		y := []float64{2, 4, 6, 8, 10}
		c := Correlate(x, y, Pearson)
		assert.Equal(t, 5, c.N)
		assert.InDelta(t, 1.0, c.Coefficient, 1e-9)
	})

	t.Run("spearman is rank based", func(t *testing.T) {
		// Monotone but nonlinear: spearman sees a perfect relationship.
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{1, 8, 27, 64, 125}
		p := Correlate(x, y, Pearson)
		s := Correlate(x, y, Spearman)
		assert.InDelta(t, 1.0, s.Coefficient, 1e-9)
		assert.Less(t, p.Coefficient, s.Coefficient+1e-12)
	})

	t.Run("weak correlation is not significant", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 6}
		y := []float64{3, 1, 4, 1, 5, 3}
		c := Correlate(x, y, Pearson)
		assert.False(t, c.Significant)
		assert.Greater(t, c.PValue, 0.05)
	})
}

func TestCorrelationMatrix(t *testing.T) {
	series := map[string][]float64{
		"completion": {80, 85, 90, 70, 95, 88},
		"mood":       {0.5, 0.6, 0.8, 0.2, 0.9, 0.7},
		"flat":       {1, 1, 1, 1, 1, 1},
	}

	env := CorrelationMatrix(series, Pearson)
	matrix, ok := env.Value.(map[string]map[string]Correlation)
	require.True(t, ok)

	t.Run("diagonal is identity", func(t *testing.T) {
		for name := range series {
			c := matrix[name][name]
			assert.Equal(t, 1.0, c.Coefficient, name)
			assert.Equal(t, 0.0, c.PValue, name)
			assert.True(t, c.Significant, name)
		}
	})

	t.Run("matrix is symmetric in coefficient", func(t *testing.T) {
		assert.InDelta(t,
			matrix["completion"]["mood"].Coefficient,
			matrix["mood"]["completion"].Coefficient, 1e-9)
	})

	t.Run("flat series correlates with nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, matrix["flat"]["mood"].Coefficient)
		assert.Equal(t, 1.0, matrix["flat"]["mood"].PValue)
		assert.False(t, matrix["flat"]["mood"].Significant)
	})

	t.Run("unknown method falls back to pearson", func(t *testing.T) {
		env := CorrelationMatrix(series, CorrelationMethod("kendall"))
		assert.Equal(t, "pearson", env.RawInputs["method"])
	})
}

func TestStudentTPValue(t *testing.T) {
	// Sanity anchors: t=0 is p=1; very large |t| approaches 0.
	assert.InDelta(t, 1.0, studentTPValue(0, 10), 1e-9)
	assert.Less(t, studentTPValue(50, 10), 1e-6)
	// Known value: t=2.228, df=10 is the 0.05 two-sided critical point.
	assert.InDelta(t, 0.05, studentTPValue(2.228, 10), 0.001)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{2, 1, 3}, ranks([]float64{5, 2, 9}))
	// Ties receive averaged ranks.
	assert.Equal(t, []float64{1.5, 1.5, 3}, ranks([]float64{4, 4, 7}))
}
