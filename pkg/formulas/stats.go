// Package formulas provides the shared numeric primitives used by the
// analytics modules. All statistics route through here so the modules stay
// independent of any specific numeric library.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// PopStdDev calculates the population standard deviation (divide by N, not N-1).
// A constant series yields exactly 0.
func PopStdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopStdDev(data, nil)
}

// CosineSimilarity calculates the normalized dot-product similarity between two
// equal-length vectors, range [-1, 1].
//
// Returns (0, false) for mismatched lengths, vectors shorter than 2 elements,
// or zero-norm vectors - cases where the similarity is undefined or meaningless.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) != len(b) || len(a) < 2 {
		return 0, false
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return floats.Dot(a, b) / (normA * normB), true
}

// SquaredDistance calculates the squared Euclidean distance between two
// equal-length vectors.
func SquaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// CompoundIndex converts a sequence of year-over-year percentage growth rates
// into a cumulative level index anchored at 100. A rate of 5.0 means a 5%
// increase over the prior computed level, not over 100.
//
//	index[0] = 100
//	index[i] = index[i-1] * (1 + rates[i]/100)
//
// The first rate seeds the base level and does not move the index.
func CompoundIndex(rates []float64) []float64 {
	if len(rates) == 0 {
		return nil
	}

	index := make([]float64, len(rates))
	index[0] = 100
	for i := 1; i < len(rates); i++ {
		index[i] = index[i-1] * (1 + rates[i]/100)
	}
	return index
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
