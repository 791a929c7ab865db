package http

import (
	"github.com/gin-gonic/gin"

	"github.com/foodrecall/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recalls := v1.Group("/recalls")
		{
			recalls.GET("/search", handler.SearchRecalls)
			recalls.GET("/:barcode", handler.CheckBarcode)
		}

		v1.PUT("/settings/country", handler.SetCountry)
		v1.DELETE("/cache", handler.ClearCache)
	}

	return router
}
