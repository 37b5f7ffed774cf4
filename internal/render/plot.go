// Package render draws the density/measurement scatter plot with its
// fitted trendlines.
package render

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jengzang/geotrend-go/internal/models"
)

// New builds a plot with one scatter series per measurement column and a
// dashed curve for each fitted trendline, evaluated over the sorted X
// values so the lines draw left to right.
func New(res *models.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Point density vs measurement total per grid cell"
	p.X.Label.Text = "points per cell"
	p.Y.Label.Text = "measurement total"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	sortedX := append([]float64(nil), res.X...)
	sort.Float64s(sortedX)

	series := 0
	for _, col := range res.Columns {
		pts := make(plotter.XYs, len(res.X))
		for i := range res.X {
			pts[i].X = res.X[i]
			pts[i].Y = col.Y[i]
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build scatter for %s: %w", col.Name, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(series)
		p.Add(scatter)

		if col.Linear != nil {
			if err := addTrendline(p, sortedX, col.Linear, series, col.Name+" (linear)"); err != nil {
				return nil, err
			}
			series++
		}
		if col.Logarithmic != nil {
			if err := addTrendline(p, sortedX, col.Logarithmic, series, col.Name+" (logarithmic)"); err != nil {
				return nil, err
			}
			series++
		}
	}

	return p, nil
}

func addTrendline(p *plot.Plot, sortedX []float64, fit *models.TrendFit, series int, label string) error {
	pts := make(plotter.XYs, len(sortedX))
	for i, x := range sortedX {
		pts[i].X = x
		pts[i].Y = fit.Eval(x)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build trendline %s: %w", label, err)
	}
	line.Color = plotutil.Color(series)
	line.Dashes = plotutil.Dashes(1)
	p.Add(line)
	p.Legend.Add(label, line)

	return nil
}

// Save renders the plot to a file; the format follows the extension.
func Save(res *models.Result, path string) error {
	p, err := New(res)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}

// WritePNG streams the rendered plot as PNG.
func WritePNG(res *models.Result, w io.Writer) error {
	p, err := New(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(10*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
