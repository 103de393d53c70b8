// Package metric provides the distance functions used for default edge
// weights and as A* heuristics.
//
// Both metrics are pure, symmetric and satisfy the triangle inequality:
//
//   - Euclidean: planar distance between two r2.Vec points, arbitrary units.
//   - Haversine: great-circle distance in kilometres between two LatLng
//     points on a sphere of radius EarthRadiusKm.
//
// Admissibility contract: a metric is an admissible A* heuristic only while
// every edge weight is at least the metric distance between its endpoints.
// Default edge weights are the metric itself, so this holds unless a caller
// supplies a smaller explicit weight. That is not checked.
package metric

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Metric measures the distance between two coordinates of type C.
type Metric[C any] func(a, b C) float64

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 // -90..90
	Lng float64 // -180..180
}

// Valid reports whether the coordinate lies inside the degree ranges.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b LatLng) float64 {
	dLat := (b.Lat - a.Lat) * degToRad
	dLng := (b.Lng - a.Lng) * degToRad
	sLat := math.Sin(dLat / 2)
	sLng := math.Sin(dLng / 2)
	h := sLat*sLat + math.Cos(a.Lat*degToRad)*math.Cos(b.Lat*degToRad)*sLng*sLng

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Zero is a metric that always returns 0. Used as an A* heuristic it turns
// A* into Dijkstra.
func Zero[C any](_, _ C) float64 { return 0 }
