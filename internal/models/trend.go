package models

import "math"

// Trendline kinds
const (
	TrendPolynomial  = "polynomial"
	TrendLogarithmic = "logarithmic"
)

// TrendFit is a fitted trendline with its quality metrics.
// For TrendPolynomial, Params are coefficients in ascending degree order.
// For TrendLogarithmic, Params are (a, b, c) of a*log(b*x)+c.
type TrendFit struct {
	Kind        string    `json:"kind"`
	Params      []float64 `json:"params"`
	Correlation float64   `json:"correlation"`
	RSquared    float64   `json:"r_squared"`
}

// Eval evaluates the fitted trendline at x.
func (f *TrendFit) Eval(x float64) float64 {
	switch f.Kind {
	case TrendLogarithmic:
		return f.Params[0]*math.Log(f.Params[1]*x) + f.Params[2]
	default:
		// Horner evaluation of the polynomial
		var v float64
		for k := len(f.Params) - 1; k >= 0; k-- {
			v = v*x + f.Params[k]
		}
		return v
	}
}

// ColumnResult holds the per-cell samples and fitted trendlines for one
// measurement column. A nil trendline means that fit failed; the
// corresponding error field carries the reason.
type ColumnResult struct {
	Name        string    `json:"name"`
	Y           []float64 `json:"y"`
	Linear      *TrendFit `json:"linear,omitempty"`
	Logarithmic *TrendFit `json:"logarithmic,omitempty"`
	LinearError string    `json:"linear_error,omitempty"`
	LogError    string    `json:"log_error,omitempty"`
}

// Result is the outcome of one analysis run.
// X holds the per-cell point counts for the non-empty cells in row-major
// cell order; it is shared by every column's Y series.
type Result struct {
	GridWidth     int            `json:"grid_width"`
	GridHeight    int            `json:"grid_height"`
	TotalPoints   int            `json:"total_points"`
	NonEmptyCells int            `json:"non_empty_cells"`
	SpanMeters    float64        `json:"span_meters"`
	X             []float64      `json:"x"`
	Columns       []ColumnResult `json:"columns"`
}
