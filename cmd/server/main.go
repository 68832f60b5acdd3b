package main

import (
	"log"

	"github.com/chananmeir/homestead-planner/internal/api"
	"github.com/chananmeir/homestead-planner/internal/config"
	"github.com/chananmeir/homestead-planner/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(database.GetDB())

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
