package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transit_lineas/internal/registry"
)

const etaNote = "Estimación basada en frecuencia por falta de datos en tiempo real"

const maxSuggestHits = 5

// landmark is one well-known place served by the autocomplete.
type landmark struct {
	Name string  `json:"nombre"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Fixed landmark gazetteer for the city; the suggest endpoint searches
// this list, not the registry.
var landmarks = []landmark{
	{Name: "Miraflores", Lat: -16.507, Lng: -68.119},
	{Name: "Cementerio General", Lat: -16.505, Lng: -68.148},
	{Name: "Terminal de Buses La Paz", Lat: -16.491, Lng: -68.147},
	{Name: "San Pedro", Lat: -16.499, Lng: -68.136},
	{Name: "Sopocachi", Lat: -16.521, Lng: -68.123},
	{Name: "Villa Fátima", Lat: -16.486, Lng: -68.108},
	{Name: "Villa Copacabana", Lat: -16.511, Lng: -68.087},
	{Name: "Obrajes", Lat: -16.542, Lng: -68.080},
	{Name: "Calacoto", Lat: -16.560, Lng: -68.081},
	{Name: "Achumani", Lat: -16.575, Lng: -68.077},
	{Name: "Zona Sur", Lat: -16.560, Lng: -68.083},
	{Name: "Estación Central (Teleférico)", Lat: -16.497, Lng: -68.136},
	{Name: "Irpavi (Teleférico Verde)", Lat: -16.548, Lng: -68.071},
}

// QueryController serves the read-only geospatial queries: proximity
// search, GeoJSON export and the frequency-based ETA.
type QueryController struct {
	Registry *registry.Registry
}

func NewQueryController(reg *registry.Registry) *QueryController {
	return &QueryController{Registry: reg}
}

// Suggest returns up to five landmarks whose name contains the query,
// case-insensitively. An empty query matches everything.
func (qc *QueryController) Suggest(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))

	hits := make([]landmark, 0, maxSuggestHits)
	for _, l := range landmarks {
		if strings.Contains(strings.ToLower(l.Name), q) {
			hits = append(hits, l)
			if len(hits) == maxSuggestHits {
				break
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

// Near returns every line with a stop or route vertex near the query
// point. Radius defaults to 300 meters.
func (qc *QueryController) Near(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	radius := registry.DefaultNearRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
		radius = r
	}

	matches, err := qc.Registry.FindNear(c.Request.Context(), lat, lng, radius)
	if err != nil {
		logrus.WithError(err).Error("Near: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": matches})
}

// ExportGeoJSON dumps the full registry as a FeatureCollection.
func (qc *QueryController) ExportGeoJSON(c *gin.Context) {
	data, err := qc.Registry.ExportGeoJSON(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ExportGeoJSON: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// ETA estimates minutes until the next departure. The stop id is echoed
// back but does not affect the estimate; without live vehicle data the
// cadence heuristic is all there is.
func (qc *QueryController) ETA(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Query("linea_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid linea_id"})
		return
	}
	stopID, err := strconv.ParseUint(c.Query("parada_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parada_id"})
		return
	}

	eta, err := qc.Registry.EstimateETA(c.Request.Context(), uint(lineID), time.Now())
	if err != nil {
		if errors.Is(err, registry.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Línea no encontrada"})
			return
		}
		logrus.WithError(err).Error("ETA: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"linea_id":  lineID,
		"parada_id": stopID,
		"eta_min":   eta,
		"note":      etaNote,
	})
}
