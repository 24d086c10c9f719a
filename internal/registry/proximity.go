package registry

import (
	"context"

	"transit_lineas/internal/geo"
	"transit_lineas/internal/metrics"
)

// DefaultNearRadiusMeters is the search radius applied when the caller
// does not supply one.
const DefaultNearRadiusMeters = 300.0

// routeRadiusFactor loosens the match tolerance for route polyline
// vertices relative to stops.
const routeRadiusFactor = 1.2

// FindNear returns every line with a stop within radiusMeters of the
// query point, or a route vertex within radiusMeters*1.2. Distances are
// point-to-vertex only; no interpolation along polyline segments is
// attempted, so a point near the middle of a long segment can miss.
// Results keep registry iteration order (line id).
func (r *Registry) FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]LineView, error) {
	views, err := r.ListLines(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]LineView, 0)
	for _, v := range views {
		if lineMatchesNear(v, lat, lng, radiusMeters) {
			matches = append(matches, v)
		}
	}

	metrics.NearQueries.Inc()
	return matches, nil
}

func lineMatchesNear(v LineView, lat, lng, radiusMeters float64) bool {
	for _, s := range v.Stops {
		if geo.DistanceMeters(lat, lng, s.Lat, s.Lng) <= radiusMeters {
			return true
		}
	}
	routeRadius := radiusMeters * routeRadiusFactor
	for _, p := range v.Route {
		if geo.DistanceMeters(lat, lng, p.Lat, p.Lng) <= routeRadius {
			return true
		}
	}
	return false
}
