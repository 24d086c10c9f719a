package routes

import (
	"github.com/gin-gonic/gin"

	"transit_lineas/internal/controllers"
	"transit_lineas/internal/middleware"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/login", controllers.LoginUser)
	r.POST("/logout", controllers.LogoutUser)
	r.GET("/me", middleware.RequireAuth(), controllers.Me)
}
