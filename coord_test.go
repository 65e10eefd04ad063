package maprouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesRoundTrip(t *testing.T) {
	c := NewCoordinates(48.74177, 9.10363)
	assert.InDelta(t, 48.74177, c.LatDegrees(), 1e-6)
	assert.InDelta(t, 9.10363, c.LonDegrees(), 1e-6)
}

func TestDistanceMetersSymmetric(t *testing.T) {
	a := NewCoordinates(48.74177, 9.10363)
	b := NewCoordinates(48.74521, 9.10255)
	assert.Equal(t, a.DistanceMeters(b), b.DistanceMeters(a))
	assert.Greater(t, a.DistanceMeters(b), uint32(0))
}

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	a := NewCoordinates(48.74177, 9.10363)
	assert.Equal(t, uint32(0), a.DistanceMeters(a))
}

func TestCellKeyGroupsNearbyPoints(t *testing.T) {
	a := NewCoordinates(48.7417, 9.1036)
	b := NewCoordinates(48.7418, 9.1037)
	assert.Equal(t, a.CellKey(), b.CellKey())
}

func TestCellKeyNegativeCoordinates(t *testing.T) {
	a := NewCoordinates(-48.74, -9.10)
	key := a.CellKey()
	assert.Equal(t, int32(-487), key.X)
	assert.Equal(t, int32(-91), key.Y)
}
