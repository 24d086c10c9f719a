package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"transit_lineas/internal/models"
)

func stopNamed(name string, lat, lng float64, seq int) models.Stop {
	return models.Stop{Name: &name, Lat: lat, Lng: lng, Seq: seq}
}

func TestFeatureCollectionAxisOrder(t *testing.T) {
	views := []LineView{{
		ID:        7,
		Name:      "Roja",
		Syndicate: "Villa Victoria",
		Route: []models.RoutePoint{
			{Lat: -16.5, Lng: -68.1, Seq: 1},
			{Lat: -16.51, Lng: -68.12, Seq: 2},
		},
		Stops: []models.Stop{stopNamed("Inicio", -16.5, -68.1, 1)},
	}}

	fc := featureCollection(views)
	require.Len(t, fc.Features, 2)

	ls, ok := fc.Features[0].Geometry.(*geom.LineString)
	require.True(t, ok)
	// GeoJSON coordinates are [lng, lat], reversed from the stored columns.
	assert.Equal(t, geom.Coord{-68.1, -16.5}, ls.Coord(0))
	assert.Equal(t, geom.Coord{-68.12, -16.51}, ls.Coord(1))
	assert.Equal(t, "recorrido", fc.Features[0].Properties["tipo"])
	assert.Equal(t, "Villa Victoria", fc.Features[0].Properties["sindicato"])

	pt, ok := fc.Features[1].Geometry.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, geom.Coord{-68.1, -16.5}, pt.Coords())
	assert.Equal(t, "parada", fc.Features[1].Properties["tipo"])
}

func TestFeatureCollectionEmptyRouteStillExportsStops(t *testing.T) {
	views := []LineView{{
		ID:    3,
		Name:  "Sin recorrido",
		Stops: []models.Stop{stopNamed("Única", -16.49, -68.13, 1)},
	}}

	fc := featureCollection(views)
	require.Len(t, fc.Features, 1)
	_, isPoint := fc.Features[0].Geometry.(*geom.Point)
	assert.True(t, isPoint)
}

func TestFeatureCollectionMarshalsAsGeoJSON(t *testing.T) {
	views := []LineView{{
		ID:    1,
		Name:  "Azul",
		Route: []models.RoutePoint{{Lat: 0, Lng: 0, Seq: 1}, {Lat: 0, Lng: 1, Seq: 2}},
	}}

	data, err := json.Marshal(featureCollection(views))
	require.NoError(t, err)

	var out struct {
		Type     string `json:"type"`
		Features []struct {
			Type     string `json:"type"`
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "FeatureCollection", out.Type)
	require.Len(t, out.Features, 1)
	assert.Equal(t, "LineString", out.Features[0].Geometry.Type)
	assert.Equal(t, []float64{1, 0}, out.Features[0].Geometry.Coordinates[1])
}

func TestFeatureCollectionEmptyRegistry(t *testing.T) {
	data, err := json.Marshal(featureCollection(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
