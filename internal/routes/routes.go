package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"transit_lineas/internal/metrics"
	"transit_lineas/internal/middleware"
	"transit_lineas/internal/registry"
)

func SetupRouter(reg *registry.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.RequestID())

	AuthRoutes(r)
	LineRoutes(r, reg)
	QueryRoutes(r, reg)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}
