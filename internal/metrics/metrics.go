// Package metrics exposes Prometheus instrumentation for the registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LineWrites counts committed registry writes by action
	// (create|update|delete).
	LineWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_line_writes_total",
		Help: "Total committed line registry writes.",
	}, []string{"action"})

	NearQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_near_queries_total",
		Help: "Total proximity searches served.",
	})

	Exports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_geojson_exports_total",
		Help: "Total GeoJSON exports served.",
	})

	ETALookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_eta_lookups_total",
		Help: "Total ETA estimates served.",
	})
)

// Handler serves the default registry on /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
