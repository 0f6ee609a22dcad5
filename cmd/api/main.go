package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/api/handlers"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/api/middleware"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/progress"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/store"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	var st *store.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		st, err = store.Open(dsn)
		if err != nil {
			log.Printf("store: disabling persistence, failed to connect: %v", err)
			st = nil
		} else if err := st.Migrate(context.Background()); err != nil {
			log.Printf("store: disabling persistence, migration failed: %v", err)
			st = nil
		}
	}

	hub := progress.NewHub()
	solveHandler := handlers.NewSolveHandler(st, hub)
	streamHandler := handlers.NewStreamHandler(hub)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api/v1")
	{
		api.POST("/solve", solveHandler.Solve)
		api.GET("/scenarios/:id", solveHandler.GetScenario)
		api.GET("/scenarios/:id/solve/stream", streamHandler.Stream)
		api.GET("/stations/presets", handlers.ListStationPresets)
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
