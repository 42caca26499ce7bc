package main

import (
	"errors"
	"net/http"

	"coffee-scout/internal/mood"

	"github.com/gin-gonic/gin"
)

// MoodOption is one selectable mood
type MoodOption struct {
	Key    string   `json:"key" example:"focused"`
	Label  string   `json:"label" example:"Focused"`
	Badges []string `json:"badges,omitempty"`
}

// MoodsResponse lists the mood catalogue and the active mood
type MoodsResponse struct {
	Active string       `json:"active" example:"focused"`
	Moods  []MoodOption `json:"moods"`
}

// MoodResponse represents the persisted mood
type MoodResponse struct {
	Mood  string `json:"mood" example:"chill"`
	Label string `json:"label" example:"Chill"`
}

// PutMoodInput is the request body for updating the mood
type PutMoodInput struct {
	Mood string `json:"mood" binding:"required" example:"chill"`
}

// handleListMoods godoc
// @Summary List moods
// @Description List the selectable moods in display order, with the currently persisted one
// @Tags mood
// @Produce json
// @Success 200 {object} MoodsResponse
// @Router /moods [get]
func (app *App) handleListMoods(c *gin.Context) {
	options := mood.All()
	resp := MoodsResponse{
		Active: string(app.preferences.Mood(c.Request.Context())),
		Moods:  make([]MoodOption, 0, len(options)),
	}
	for _, o := range options {
		resp.Moods = append(resp.Moods, MoodOption{
			Key:    string(o.Key),
			Label:  o.Label,
			Badges: o.Key.Badges(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetMood godoc
// @Summary Get mood
// @Description Get the last chosen mood, focused when none has been saved
// @Tags mood
// @Produce json
// @Success 200 {object} MoodResponse
// @Router /mood [get]
func (app *App) handleGetMood(c *gin.Context) {
	m := app.preferences.Mood(c.Request.Context())
	c.JSON(http.StatusOK, MoodResponse{Mood: string(m), Label: m.Label()})
}

// handlePutMood godoc
// @Summary Set mood
// @Description Persist the mood used when a recommendation request does not name one
// @Tags mood
// @Accept json
// @Produce json
// @Param body body PutMoodInput true "Mood to persist"
// @Success 200 {object} MoodResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /mood [put]
func (app *App) handlePutMood(c *gin.Context) {
	var input PutMoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mood.Parse(input.Mood)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := app.preferences.SetMood(c.Request.Context(), m); err != nil {
		if errors.Is(err, mood.ErrUnknownMood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to save mood", "mood", m, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save mood"})
		return
	}

	c.JSON(http.StatusOK, MoodResponse{Mood: string(m), Label: m.Label()})
}
