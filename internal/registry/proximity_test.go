package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transit_lineas/internal/geo"
	"transit_lineas/internal/models"
)

// metersPerDegLat is exact on the spherical model for displacement along
// a meridian: 2*pi*R/360.
const metersPerDegLat = 111194.92664455873

func degNorth(meters float64) float64 {
	return meters / metersPerDegLat
}

func viewWith(stops []models.Stop, route []models.RoutePoint) LineView {
	return LineView{ID: 1, Name: "Roja", Syndicate: "Villa Victoria", Stops: stops, Route: route}
}

func TestLineMatchesAtStopCoordinates(t *testing.T) {
	v := viewWith(
		[]models.Stop{{Lat: -16.5, Lng: -68.15, Seq: 1}},
		[]models.RoutePoint{{Lat: -16.6, Lng: -68.2, Seq: 1}},
	)
	assert.True(t, lineMatchesNear(v, -16.5, -68.15, 300))
}

func TestLineNoMatchBeyondBothTolerances(t *testing.T) {
	// Query point 301 m from the only stop and 450 m from the only route
	// vertex: outside both the 300 m stop radius and the 360 m (300*1.2)
	// route radius.
	v := viewWith(
		[]models.Stop{{Lat: 0, Lng: 0, Seq: 1}},
		[]models.RoutePoint{{Lat: degNorth(301 + 450), Lng: 0, Seq: 1}},
	)
	queryLat := degNorth(301)

	require.InDelta(t, 301, geo.DistanceMeters(queryLat, 0, 0, 0), 0.01)
	require.InDelta(t, 450, geo.DistanceMeters(queryLat, 0, degNorth(301+450), 0), 0.01)

	assert.False(t, lineMatchesNear(v, queryLat, 0, 300))
}

func TestLineMatchesViaLooserRouteTolerance(t *testing.T) {
	// 350 m is past the stop radius but inside the 1.2x route radius.
	v := viewWith(
		nil,
		[]models.RoutePoint{{Lat: degNorth(350), Lng: 0, Seq: 1}},
	)
	assert.True(t, lineMatchesNear(v, 0, 0, 300))

	// The same vertex treated as a stop would not match.
	asStop := viewWith([]models.Stop{{Lat: degNorth(350), Lng: 0, Seq: 1}}, nil)
	assert.False(t, lineMatchesNear(asStop, 0, 0, 300))
}
