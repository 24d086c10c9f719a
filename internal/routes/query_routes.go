package routes

import (
	"github.com/gin-gonic/gin"

	"transit_lineas/internal/controllers"
	"transit_lineas/internal/registry"
)

func QueryRoutes(r *gin.Engine, reg *registry.Registry) {
	qc := controllers.NewQueryController(reg)

	r.GET("/suggest", qc.Suggest)
	r.GET("/near", qc.Near)
	r.GET("/export/geojson", qc.ExportGeoJSON)
	r.GET("/eta", qc.ETA)
}
