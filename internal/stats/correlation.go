package stats

import (
	"math"
)

// Covariance calculates the weighted population covariance of two
// equal-length series: the weighted mean of (x-meanX)*(y-meanY).
func Covariance(x, y, weights []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	meanX, err := WeightedMean(x, weights)
	if err != nil {
		return 0, err
	}
	meanY, err := WeightedMean(y, weights)
	if err != nil {
		return 0, err
	}

	products := make([]float64, len(x))
	for i := range x {
		products[i] = (x[i] - meanX) * (y[i] - meanY)
	}

	return WeightedMean(products, weights)
}

// PearsonCorrelation calculates the weighted Pearson correlation
// coefficient cov(x,y)/sqrt(cov(x,x)*cov(y,y)).
// Returns ErrZeroVariance when either series has zero variance.
func PearsonCorrelation(x, y, weights []float64) (float64, error) {
	covXY, err := Covariance(x, y, weights)
	if err != nil {
		return 0, err
	}
	varX, err := Covariance(x, x, weights)
	if err != nil {
		return 0, err
	}
	varY, err := Covariance(y, y, weights)
	if err != nil {
		return 0, err
	}

	if varX == 0 || varY == 0 {
		return 0, ErrZeroVariance
	}

	return covXY / math.Sqrt(varX*varY), nil
}

// RSquared calculates the coefficient of determination of a trendline
// against observed data: 1 - RSS/TSS, both weighted by fn (uniform when
// fn is nil). Returns ErrZeroTotalSS when the observed y is constant.
func RSquared(x, y []float64, trend func(float64) float64, fn WeightFunc) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	weights := Weights(x, y, fn)
	if weights == nil {
		weights = make([]float64, len(x))
		for i := range weights {
			weights[i] = 1
		}
	}

	mean, err := WeightedMean(y, weights)
	if err != nil {
		return 0, err
	}

	var tss, rss float64
	for i := range y {
		d := y[i] - mean
		tss += weights[i] * d * d
		r := trend(x[i]) - y[i]
		rss += weights[i] * r * r
	}

	if tss == 0 {
		return 0, ErrZeroTotalSS
	}

	return 1 - rss/tss, nil
}
