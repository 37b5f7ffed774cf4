// Package analysis drives one trend analysis run: load geodata, partition
// it into a grid, aggregate per-cell samples and fit trendlines.
package analysis

import (
	"fmt"
	"log"
	"math"

	"github.com/jengzang/geotrend-go/internal/config"
	"github.com/jengzang/geotrend-go/internal/geodata"
	"github.com/jengzang/geotrend-go/internal/models"
	"github.com/jengzang/geotrend-go/internal/regress"
	"github.com/jengzang/geotrend-go/internal/spatial"
)

// TrendAnalyzer correlates per-cell point density with per-cell measurement
// totals.
type TrendAnalyzer struct {
	cfg *config.Config
}

// NewTrendAnalyzer creates an analyzer for the given configuration.
func NewTrendAnalyzer(cfg *config.Config) *TrendAnalyzer {
	return &TrendAnalyzer{cfg: cfg}
}

// Run performs the full analysis: load, partition, aggregate, fit.
// A failed fit is recorded on its column and does not abort the run.
func (a *TrendAnalyzer) Run() (*models.Result, error) {
	table, err := geodata.Load(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load geodata: %w", err)
	}
	if len(table.Records) == 0 {
		return nil, fmt.Errorf("input contains no records")
	}
	log.Printf("[TrendAnalyzer] Loaded %d records, %d measurement columns", len(table.Records), len(table.Columns))

	lons := make([]float64, len(table.Records))
	lats := make([]float64, len(table.Records))
	for i, rec := range table.Records {
		lons[i] = rec.Lon
		lats[i] = rec.Lat
	}

	grid, err := spatial.NewGrid(lons, lats, a.cfg.ChunkWidth, a.cfg.ChunkHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	cells := grid.Partition()

	result := &models.Result{
		GridWidth:   grid.Width(),
		GridHeight:  grid.Height(),
		TotalPoints: len(table.Records),
		SpanMeters:  grid.SpanMeters(),
	}

	// Row-major cell walk. Empty cells contribute no sample: a (0, 0)
	// observation would bias the logarithmic fit, which is undefined at 0.
	ys := make([][]float64, len(table.Columns))
	for i := 0; i < grid.Width(); i++ {
		for j := 0; j < grid.Height(); j++ {
			indices := cells[i*grid.Height()+j]
			if len(indices) == 0 {
				continue
			}
			result.X = append(result.X, float64(len(indices)))
			for c := range table.Columns {
				var total float64
				for _, idx := range indices {
					if v := table.Records[idx].Values[c]; !math.IsNaN(v) {
						total += v
					}
				}
				ys[c] = append(ys[c], total)
			}
		}
	}
	result.NonEmptyCells = len(result.X)
	log.Printf("[TrendAnalyzer] Partitioned into %dx%d cells (%d non-empty, span %.0f m)",
		grid.Width(), grid.Height(), result.NonEmptyCells, result.SpanMeters)

	for c, name := range table.Columns {
		result.Columns = append(result.Columns, a.fitColumn(name, result.X, ys[c]))
	}

	return result, nil
}

// fitColumn fits both trendlines for one measurement column and logs the
// metrics. Fit failures are recorded, not propagated.
func (a *TrendAnalyzer) fitColumn(name string, x, y []float64) models.ColumnResult {
	col := models.ColumnResult{Name: name, Y: y}

	linear, err := regress.FitPolynomial(x, y, 1, nil)
	if err != nil {
		col.LinearError = err.Error()
		log.Printf("[TrendAnalyzer] %s - linear fit failed: %v", name, err)
	} else {
		col.Linear = linear
		log.Printf("[TrendAnalyzer] %s - Correlation coefficient: %.3f", name, linear.Correlation)
		log.Printf("[TrendAnalyzer] %s - R-squared (linear): %.3f", name, linear.RSquared)
	}

	logFit, err := regress.FitLogarithmic(x, y, nil)
	if err != nil {
		col.LogError = err.Error()
		log.Printf("[TrendAnalyzer] %s - logarithmic fit failed: %v", name, err)
	} else {
		col.Logarithmic = logFit
		log.Printf("[TrendAnalyzer] %s - R-squared (logarithmic): %.3f", name, logFit.RSquared)
	}

	return col
}
