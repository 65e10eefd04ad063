// Package maprouter builds a compact road-network graph from an OpenStreetMap
// extract and answers shortest-path queries for car, bicycle and mixed travel,
// with a range-constrained extension for electric vehicles that need
// intermediate charging stops.
package maprouter

import (
	"github.com/golang/geo/s2"
	"github.com/umahmood/haversine"
)

// fixedPointScale is the number of fixed-point units per degree (one
// ten-millionth of a degree per unit).
const fixedPointScale = 1e7

// cellScale controls the spatial-grid resolution: coordinates are rounded to
// one decimal degree, yielding cells roughly 11km on a side near the equator.
const cellScale = 10.0

// Coordinates is a lat/lon pair stored as fixed-point integers scaled by 1e7.
type Coordinates struct {
	Lat int32
	Lon int32
}

// NewCoordinates builds a Coordinates value from floating-point degrees.
func NewCoordinates(lat, lon float64) Coordinates {
	return Coordinates{
		Lat: int32(lat * fixedPointScale),
		Lon: int32(lon * fixedPointScale),
	}
}

// LatDegrees returns the latitude as double-precision degrees.
func (c Coordinates) LatDegrees() float64 {
	return float64(c.Lat) / fixedPointScale
}

// LonDegrees returns the longitude as double-precision degrees.
func (c Coordinates) LonDegrees() float64 {
	return float64(c.Lon) / fixedPointScale
}

// CellKey is the spatial-grid bucket key: each coordinate rounded to one
// decimal degree. Grid membership and nearest-neighbor lookups operate on
// this key, never on the exact fixed-point value.
type CellKey struct {
	X int32
	Y int32
}

// CellKey derives the coordinate's spatial-grid bucket.
func (c Coordinates) CellKey() CellKey {
	return CellKey{
		X: roundToInt32(c.LatDegrees() * cellScale),
		Y: roundToInt32(c.LonDegrees() * cellScale),
	}
}

func roundToInt32(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}

// latLng converts to an s2.LatLng for geometry operations, reusing the same
// geodesy library the teacher graph relied on for its node locations.
func (c Coordinates) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.LatDegrees(), c.LonDegrees())
}

// DistanceMeters returns the haversine great-circle distance to other,
// rounded to the nearest whole meter.
func (c Coordinates) DistanceMeters(other Coordinates) uint32 {
	a := c.latLng()
	b := other.latLng()
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat.Degrees(), Lon: a.Lng.Degrees()},
		haversine.Coord{Lat: b.Lat.Degrees(), Lon: b.Lng.Degrees()},
	)
	return uint32(km*1000 + 0.5)
}
