package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(-16.5, -68.15, -16.5, -68.15))
}

func TestDistanceMetersSymmetric(t *testing.T) {
	d1 := DistanceMeters(-16.507, -68.119, -16.491, -68.147)
	d2 := DistanceMeters(-16.491, -68.147, -16.507, -68.119)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceMetersArcMinuteOfLatitude(t *testing.T) {
	// One arc-minute of latitude is one nautical mile, 1852 m, within 1%
	// on the spherical model.
	d := DistanceMeters(0, 0, 1.0/60.0, 0)
	assert.InEpsilon(t, 1852.0, d, 0.01)
}

func TestDistanceMetersShrinksWithLatitude(t *testing.T) {
	// A degree of longitude is shorter away from the equator.
	atEquator := DistanceMeters(0, 0, 0, 1)
	atLaPaz := DistanceMeters(-16.5, -68, -16.5, -67)
	assert.Less(t, atLaPaz, atEquator)
}
