package stats

import (
	"errors"
)

// Named failure modes. Degenerate inputs surface as errors instead of
// silently propagating NaN into downstream fits and plots.
var (
	ErrEmptyInput     = errors.New("stats: empty input")
	ErrLengthMismatch = errors.New("stats: series length mismatch")
	ErrZeroWeightSum  = errors.New("stats: weights sum to zero")
	ErrZeroVariance   = errors.New("stats: zero variance, correlation undefined")
	ErrZeroTotalSS    = errors.New("stats: zero total sum of squares, r-squared undefined")
)

// WeightFunc assigns a nonnegative weight to an (x, y) observation.
type WeightFunc func(x, y float64) float64

// Weights evaluates fn elementwise over paired observations.
// A nil fn yields nil, which downstream functions treat as uniform weights.
func Weights(x, y []float64, fn WeightFunc) []float64 {
	if fn == nil {
		return nil
	}
	w := make([]float64, len(x))
	for i := range x {
		w[i] = fn(x[i], y[i])
	}
	return w
}

// WeightedMean calculates the weighted arithmetic mean.
// A nil weights slice means equal weighting.
func WeightedMean(values, weights []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if weights == nil {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values)), nil
	}
	if len(weights) != len(values) {
		return 0, ErrLengthMismatch
	}

	var sumWeighted, sumWeights float64
	for i, v := range values {
		sumWeighted += v * weights[i]
		sumWeights += weights[i]
	}
	if sumWeights == 0 {
		return 0, ErrZeroWeightSum
	}

	return sumWeighted / sumWeights, nil
}
