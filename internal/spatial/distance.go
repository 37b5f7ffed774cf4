package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// SpanMeters returns the great-circle length of the grid's bounding box
// diagonal. Used for reporting the geographic extent of a dataset.
func (g *Grid) SpanMeters() float64 {
	lo := g.bounds.Lo()
	hi := g.bounds.Hi()
	return HaversineDistance(lo.Y, lo.X, hi.Y, hi.X)
}
