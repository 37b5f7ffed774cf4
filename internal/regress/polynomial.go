// Package regress fits trendlines to per-cell (density, total) samples:
// weighted polynomial least squares and nonlinear curve fits.
package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jengzang/geotrend-go/internal/models"
	"github.com/jengzang/geotrend-go/internal/stats"
)

// FitPolynomial fits a polynomial of the given degree to (x, y) by weighted
// least squares and attaches Pearson correlation and R-squared. Degree 0 is
// a constant fit. Duplicate x values are fine. Fails when the system is
// underdetermined (fewer than degree+1 observations).
func FitPolynomial(x, y []float64, degree int, fn stats.WeightFunc) (*models.TrendFit, error) {
	if len(x) != len(y) {
		return nil, stats.ErrLengthMismatch
	}
	if degree < 0 {
		return nil, fmt.Errorf("regress: invalid degree %d", degree)
	}
	n := len(x)
	terms := degree + 1
	if n < terms {
		return nil, fmt.Errorf("regress: %d observations cannot determine a degree-%d polynomial", n, degree)
	}

	weights := stats.Weights(x, y, fn)

	// Weighted Vandermonde system: scale each row by sqrt(w) so the
	// least-squares solution minimizes the weighted residual sum.
	a := mat.NewDense(n, terms, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		s := 1.0
		if weights != nil {
			s = math.Sqrt(weights[i])
		}
		pow := 1.0
		for k := 0; k < terms; k++ {
			a.Set(i, k, s*pow)
			pow *= x[i]
		}
		b.SetVec(i, s*y[i])
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("regress: least squares solve: %w", err)
	}

	params := make([]float64, terms)
	for k := range params {
		params[k] = sol.AtVec(k)
	}

	fit := &models.TrendFit{Kind: models.TrendPolynomial, Params: params}
	if err := attachMetrics(fit, x, y, fn); err != nil {
		return nil, err
	}

	return fit, nil
}

// attachMetrics fills in correlation and R-squared for a fitted trendline.
func attachMetrics(fit *models.TrendFit, x, y []float64, fn stats.WeightFunc) error {
	p, err := stats.PearsonCorrelation(x, y, stats.Weights(x, y, fn))
	if err != nil {
		return err
	}
	r2, err := stats.RSquared(x, y, fit.Eval, fn)
	if err != nil {
		return err
	}
	fit.Correlation = p
	fit.RSquared = r2

	return nil
}
