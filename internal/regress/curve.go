package regress

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/jengzang/geotrend-go/internal/models"
	"github.com/jengzang/geotrend-go/internal/stats"
)

// ErrNoConvergence reports a nonlinear fit that failed to converge within
// its iteration budget or landed outside the model's domain.
var ErrNoConvergence = errors.New("regress: curve fit did not converge")

// Model is a parametric curve y = f(x; params).
// Out-of-domain evaluations must return NaN.
type Model func(x float64, params []float64) float64

// Logarithmic is a*log(b*x)+c with params (a, b, c).
func Logarithmic(x float64, params []float64) float64 {
	v := params[1] * x
	if v <= 0 {
		return math.NaN()
	}
	return params[0]*math.Log(v) + params[2]
}

// FitCurve fits model to (x, y) by minimizing the weighted residual sum of
// squares with Nelder-Mead, starting from initial. Returns the optimized
// parameters.
func FitCurve(x, y []float64, model Model, initial []float64, fn stats.WeightFunc) ([]float64, error) {
	settings := &optimize.Settings{
		MajorIterations: 2000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Iterations: 200,
		},
	}
	return fitCurve(x, y, model, initial, fn, settings)
}

func fitCurve(x, y []float64, model Model, initial []float64, fn stats.WeightFunc, settings *optimize.Settings) ([]float64, error) {
	if len(x) != len(y) {
		return nil, stats.ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, stats.ErrEmptyInput
	}

	weights := stats.Weights(x, y, fn)

	rss := func(params []float64) float64 {
		var sum float64
		for i := range x {
			v := model(x[i], params)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return math.Inf(1)
			}
			r := v - y[i]
			w := 1.0
			if weights != nil {
				w = weights[i]
			}
			sum += w * r * r
		}
		return sum
	}

	problem := optimize.Problem{Func: rss}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}
	// Minimize reports an exhausted budget as a Status with a nil error;
	// an unconverged optimum must not pass for a fit.
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit:
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, result.Status)
	}
	if math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return nil, fmt.Errorf("%w: optimum outside model domain", ErrNoConvergence)
	}

	return result.X, nil
}

// FitLogarithmic fits a*log(b*x)+c to (x, y) and attaches Pearson
// correlation and R-squared. The initial guess centers c on the mean of y.
func FitLogarithmic(x, y []float64, fn stats.WeightFunc) (*models.TrendFit, error) {
	meanY, err := stats.WeightedMean(y, nil)
	if err != nil {
		return nil, err
	}

	params, err := FitCurve(x, y, Logarithmic, []float64{1, 1, meanY}, fn)
	if err != nil {
		return nil, err
	}

	fit := &models.TrendFit{Kind: models.TrendLogarithmic, Params: params}
	if err := attachMetrics(fit, x, y, fn); err != nil {
		return nil, err
	}

	return fit, nil
}
