package main

import (
	"log"
	"net/http"
	"os"

	"transit_lineas/internal/config"
	"transit_lineas/internal/logger"
	"transit_lineas/internal/middleware"
	"transit_lineas/internal/registry"
	"transit_lineas/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// The registry gets its own handle; nothing below the HTTP layer
	// touches the global.
	reg := registry.New(config.GetDB())

	// Setup Gin router
	r := routes.SetupRouter(reg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Println("🚀 Server running at " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
