package routes

import (
	"github.com/gin-gonic/gin"

	"transit_lineas/internal/controllers"
	"transit_lineas/internal/middleware"
	"transit_lineas/internal/models"
	"transit_lineas/internal/registry"
)

func LineRoutes(r *gin.Engine, reg *registry.Registry) {
	lc := controllers.NewLineController(reg)

	// Public reads
	r.GET("/lineas", lc.List)
	r.GET("/lineas/:key", lc.Get)
	r.GET("/sindicatos", lc.ListSyndicates)

	// Writes need an editor or admin token
	writes := r.Group("/")
	writes.Use(middleware.RequireAuthWithRoles(models.RoleAdmin, models.RoleEditor))
	{
		writes.POST("/lineas", lc.Create)
		writes.PUT("/lineas/:id", lc.Update)
		writes.DELETE("/lineas/:id", lc.Delete)
	}
}
