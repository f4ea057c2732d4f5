package formulas

import (
	"github.com/markcheno/go-talib"
)

// RollingMean applies a moving-window mean along the series. The output has
// the same length as the input: positions before the window fills average only
// the available points (partial windows) instead of emitting nulls.
//
//	RollingMean([1,2,3,4,5], 3) = [1, 1.5, 2, 3, 4]
func RollingMean(data []float64, window int) []float64 {
	if window <= 1 || len(data) == 0 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	if len(data) < window {
		// Series shorter than the window: every position is a partial window.
		return expandingMean(data)
	}

	// talib fills the warmup prefix with zeros; replace it with partial means.
	out := talib.Sma(data, window)
	partial := expandingMean(data[:window-1])
	copy(out[:window-1], partial)
	return out
}

// expandingMean returns the running mean of data[0..i] for each i.
func expandingMean(data []float64) []float64 {
	out := make([]float64, len(data))
	var sum float64
	for i, v := range data {
		sum += v
		out[i] = sum / float64(i+1)
	}
	return out
}
