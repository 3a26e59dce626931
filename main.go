package main

import (
	"log"

	"github.com/beyazservis/servis-go/config"
	"github.com/beyazservis/servis-go/db"
	"github.com/beyazservis/servis-go/middleware"
	"github.com/beyazservis/servis-go/realtime"
	"github.com/beyazservis/servis-go/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	hub := realtime.NewHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	services_instance := routes.RegisterRoutes(r, hub)

	// one-time lookup seed, non-fatal
	go func() {
		if err := services_instance.Lokasyon.SeedIfEmpty(config.LocationAPIURL); err != nil {
			log.Println("Location seed failed:", err)
		}
	}()

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Server failed:", err)
	}
}
