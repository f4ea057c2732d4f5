package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, -1.5, Mean([]float64{-1, -2}))
}

func TestPopStdDev(t *testing.T) {
	assert.Equal(t, 0.0, PopStdDev(nil))

	// Constant series has exactly zero spread.
	assert.Equal(t, 0.0, PopStdDev([]float64{4.2, 4.2, 4.2}))

	// Population formula divides by N: [2,4,4,4,5,5,7,9] -> stddev 2.
	assert.InDelta(t, 2.0, PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)

	assert.GreaterOrEqual(t, PopStdDev([]float64{-3, 1, 8}), 0.0)
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		score, ok := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3})
		require.True(t, ok)
		assert.InDelta(t, 1.0, score, 1e-12)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		score, ok := CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
		require.True(t, ok)
		assert.InDelta(t, -1.0, score, 1e-12)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		score, ok := CosineSimilarity([]float64{1, 0}, []float64{0, 1})
		require.True(t, ok)
		assert.InDelta(t, 0.0, score, 1e-12)
	})

	t.Run("zero-norm vector is rejected", func(t *testing.T) {
		_, ok := CosineSimilarity([]float64{0, 0}, []float64{1, 2})
		assert.False(t, ok)
	})

	t.Run("mismatched lengths are rejected", func(t *testing.T) {
		_, ok := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2})
		assert.False(t, ok)
	})

	t.Run("single-point vectors are rejected", func(t *testing.T) {
		_, ok := CosineSimilarity([]float64{1}, []float64{2})
		assert.False(t, ok)
	})
}

func TestCompoundIndex(t *testing.T) {
	t.Run("zero rates yield a flat 100 index", func(t *testing.T) {
		index := CompoundIndex([]float64{0, 0, 0, 0})
		for _, v := range index {
			assert.InDelta(t, 100.0, v, 1e-12)
		}
	})

	t.Run("rates compound on the prior level", func(t *testing.T) {
		index := CompoundIndex([]float64{2.5, 10, -10})
		require.Len(t, index, 3)
		assert.InDelta(t, 100.0, index[0], 1e-12)
		assert.InDelta(t, 110.0, index[1], 1e-12)
		assert.InDelta(t, 99.0, index[2], 1e-12)
	})

	assert.Nil(t, CompoundIndex(nil))
}

func TestSquaredDistance(t *testing.T) {
	assert.Equal(t, 0.0, SquaredDistance([]float64{1, 2}, []float64{1, 2}))
	assert.Equal(t, 25.0, SquaredDistance([]float64{0, 3}, []float64{4, 0}))
}
