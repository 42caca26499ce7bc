package main

import (
	"net/http"

	"coffee-scout/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Mood endpoints
	app.router.GET("/moods", app.handleListMoods)
	app.router.GET("/mood", app.handleGetMood)
	app.router.PUT("/mood", app.handlePutMood)

	// Recommendation endpoints
	app.router.GET("/recommendations", app.handleGetRecommendations)
	app.router.GET("/recommendations/latest", app.handleGetLatestRecommendation)

	// Prometheus metrics
	app.router.GET("/metrics", metrics.Handler())

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
