package main

import (
	"errors"
	"net/http"

	"coffee-scout/internal/location"
	"coffee-scout/internal/mood"
	"coffee-scout/internal/recommend"
	"coffee-scout/internal/scout"

	"github.com/gin-gonic/gin"
)

// GetRecommendationsInput defines the query parameters for the recommendations endpoint
type GetRecommendationsInput struct {
	Latitude  *float64 `form:"latitude"`  // Latitude in decimal degrees, default location when omitted
	Longitude *float64 `form:"longitude"` // Longitude in decimal degrees, default location when omitted
	Mood      string   `form:"mood"`      // Mood, persisted mood when omitted
}

// handleGetRecommendations godoc
// @Summary Recommend cafés
// @Description Rank cafés within 1200 m of the given point for a mood, the local time of day and the current weather. Without coordinates the configured default location is used.
// @Tags recommendations
// @Produce json
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(37.7749)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.4194)
// @Param mood query string false "Mood" Enums(focused, chill, social, creative, energetic)
// @Success 200 {object} scout.Recommendation
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /recommendations [get]
func (app *App) handleGetRecommendations(c *gin.Context) {
	var input GetRecommendationsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := scout.Request{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if input.Mood != "" {
		m, err := mood.Parse(input.Mood)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Mood = &m
	}

	// Delegate to business layer
	rec, err := app.scoutService.Recommend(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidLatitude),
			errors.Is(err, location.ErrInvalidLongitude),
			errors.Is(err, location.ErrIncompleteCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, recommend.ErrSearchUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": recommend.ErrSearchUnavailable.Error()})
		default:
			app.logger.Error("failed to get recommendations", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}

// handleGetLatestRecommendation godoc
// @Summary Latest recommendation
// @Description Return the newest completed recommendation. Searches that finish after a newer one never replace it.
// @Tags recommendations
// @Produce json
// @Success 200 {object} scout.Recommendation
// @Failure 404 {object} map[string]string
// @Router /recommendations/latest [get]
func (app *App) handleGetLatestRecommendation(c *gin.Context) {
	rec, ok := app.scoutService.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no recommendation yet"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
