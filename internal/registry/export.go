package registry

import (
	"context"
	"encoding/json"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"transit_lineas/internal/metrics"
)

// ExportGeoJSON serializes the whole registry as a GeoJSON
// FeatureCollection: one LineString per line with a non-empty route and
// one Point per stop. Coordinates follow the GeoJSON [lng, lat] axis
// order, reversed from the stored lat/lng columns.
func (r *Registry) ExportGeoJSON(ctx context.Context) ([]byte, error) {
	views, err := r.ListLines(ctx)
	if err != nil {
		return nil, err
	}

	fc := featureCollection(views)
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, err
	}

	metrics.Exports.Inc()
	return data, nil
}

func featureCollection(views []LineView) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, v := range views {
		if len(v.Route) > 0 {
			coords := make([]geom.Coord, len(v.Route))
			for i, p := range v.Route {
				coords[i] = geom.Coord{p.Lng, p.Lat}
			}
			fc.Features = append(fc.Features, &geojson.Feature{
				Geometry: geom.NewLineString(geom.XY).MustSetCoords(coords),
				Properties: map[string]interface{}{
					"tipo":      "recorrido",
					"linea_id":  v.ID,
					"nombre":    v.Name,
					"sindicato": v.Syndicate,
				},
			})
		}
		for _, s := range v.Stops {
			fc.Features = append(fc.Features, &geojson.Feature{
				Geometry: geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{s.Lng, s.Lat}),
				Properties: map[string]interface{}{
					"tipo":     "parada",
					"linea_id": v.ID,
					"nombre":   s.Name,
				},
			})
		}
	}
	return fc
}
