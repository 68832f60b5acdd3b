package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/handler"
	"github.com/chananmeir/homestead-planner/internal/middleware"
	"github.com/chananmeir/homestead-planner/internal/repository"
	"github.com/chananmeir/homestead-planner/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	plantRepo := repository.NewPlantRepository(db)
	bedRepo := repository.NewBedRepository(db)
	eventRepo := repository.NewEventRepository(db)

	conflictService := service.NewConflictService(eventRepo, bedRepo, plantRepo)
	plantService := service.NewPlantService(plantRepo)
	bedService := service.NewBedService(bedRepo)
	eventService := service.NewEventService(eventRepo, plantRepo, bedRepo, conflictService)
	calendarService := service.NewCalendarService(eventRepo, plantRepo)

	plantHandler := handler.NewPlantHandler(plantService)
	bedHandler := handler.NewBedHandler(bedService)
	eventHandler := handler.NewEventHandler(eventService)
	conflictHandler := handler.NewConflictHandler(conflictService)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Homestead Planner API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		plants := api.Group("/plants")
		{
			plants.GET("", plantHandler.List)
			plants.POST("", plantHandler.Create)
			plants.GET("/:id", plantHandler.Get)
			plants.PUT("/:id", plantHandler.Update)
			plants.DELETE("/:id", plantHandler.Delete)
		}

		beds := api.Group("/beds")
		{
			beds.GET("", bedHandler.List)
			beds.POST("", bedHandler.Create)
			beds.GET("/:id", bedHandler.Get)
			beds.PUT("/:id", bedHandler.Update)
			beds.DELETE("/:id", bedHandler.Delete)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.POST("", eventHandler.Create)
			events.POST("/succession", eventHandler.CreateSeries)
			events.GET("/succession/suggestion", eventHandler.Suggest)
			events.POST("/bulk-complete", eventHandler.BulkComplete)
			events.GET("/:id", eventHandler.Get)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)
		}

		// Interactive dragging fires these in bursts; callers debounce at
		// ~500ms, the limiter covers the ones that don't.
		limiter := middleware.NewRateLimiter(20, time.Second)
		conflicts := api.Group("/conflicts", limiter.Middleware())
		{
			conflicts.GET("/check", conflictHandler.Check)
		}

		cal := api.Group("/calendar")
		{
			cal.GET("", calendarHandler.Markers)
			cal.GET("/groups/:groupId/summary", calendarHandler.GroupSummary)
		}
	}

	return r
}
