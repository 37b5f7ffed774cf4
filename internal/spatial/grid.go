// Package spatial partitions geodata points into a fixed-size grid
// covering their bounding box.
package spatial

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Grid is a width x height partition of the bounding rectangle of a point
// set. X is longitude, Y is latitude. Cell assignment is a pure function of
// a point's coordinates and the global bounding box.
type Grid struct {
	width  int
	height int
	bounds r2.Rect
	cellW  float64
	cellH  float64
	lons   []float64
	lats   []float64
}

// NewGrid builds a grid over the bounding box of the given coordinates.
func NewGrid(lons, lats []float64, width, height int) (*Grid, error) {
	if len(lons) != len(lats) {
		return nil, fmt.Errorf("spatial: %d longitudes vs %d latitudes", len(lons), len(lats))
	}
	if len(lons) == 0 {
		return nil, fmt.Errorf("spatial: no points to partition")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("spatial: invalid grid dimensions %dx%d", width, height)
	}

	bounds := r2.RectFromPoints(r2.Point{X: lons[0], Y: lats[0]})
	for i := 1; i < len(lons); i++ {
		bounds = bounds.AddPoint(r2.Point{X: lons[i], Y: lats[i]})
	}

	return &Grid{
		width:  width,
		height: height,
		bounds: bounds,
		cellW:  bounds.X.Length() / float64(width),
		cellH:  bounds.Y.Length() / float64(height),
		lons:   lons,
		lats:   lats,
	}, nil
}

// Width returns the number of cells along the longitude axis.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along the latitude axis.
func (g *Grid) Height() int { return g.height }

// Bounds returns the bounding rectangle of the partitioned points.
func (g *Grid) Bounds() r2.Rect { return g.bounds }

// CellIndex returns the cell containing (lon, lat). Points on an interior
// dividing line belong to the higher-index cell; points on the maximum edge
// are clamped into the last cell, so every point has exactly one cell.
func (g *Grid) CellIndex(lon, lat float64) (int, int) {
	return clampedIndex(lon, g.bounds.X.Lo, g.cellW, g.width),
		clampedIndex(lat, g.bounds.Y.Lo, g.cellH, g.height)
}

func clampedIndex(v, lo, size float64, n int) int {
	if size == 0 {
		return 0
	}
	i := int((v - lo) / size)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// CellBounds returns the rectangle of cell (i, j).
func (g *Grid) CellBounds(i, j int) r2.Rect {
	lo := r2.Point{
		X: g.bounds.X.Lo + float64(i)*g.cellW,
		Y: g.bounds.Y.Lo + float64(j)*g.cellH,
	}
	return r2.RectFromPoints(lo, r2.Point{X: lo.X + g.cellW, Y: lo.Y + g.cellH})
}

// Partition buckets every point into its cell and returns the cells in
// row-major order (cell (i, j) at index i*height+j). Cells hold the indices
// of the points assigned to them; empty cells stay present as empty lists.
// The union of all cells is exactly the input point set.
func (g *Grid) Partition() [][]int {
	cells := make([][]int, g.width*g.height)
	for idx := range g.lons {
		i, j := g.CellIndex(g.lons[idx], g.lats[idx])
		c := i*g.height + j
		cells[c] = append(cells[c], idx)
	}
	return cells
}
