package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"city-weather/internal/widget"

	"github.com/gin-gonic/gin"
)

// CreateWidgetResponse carries the new session's identifier
type CreateWidgetResponse struct {
	ID string `json:"id" example:"3f1c8a2e-6b0d-4a57-9c1e-2d7f5b8e4a10"`
}

// WidgetResponse is a session's current panel state
type WidgetResponse struct {
	ID        string    `json:"id" example:"3f1c8a2e-6b0d-4a57-9c1e-2d7f5b8e4a10"`
	CreatedAt time.Time `json:"created_at"`
	widget.PanelState
}

// WidgetInput is the new value of the city field
type WidgetInput struct {
	Value *string `json:"value" binding:"required" example:"Berl"`
}

func newWidgetResponse(session *widget.Session) WidgetResponse {
	return WidgetResponse{
		ID:         session.ID,
		CreatedAt:  session.CreatedAt,
		PanelState: session.Panel.Snapshot(),
	}
}

// session looks up the :id session, writing a 404 when it does not exist
func (app *App) session(c *gin.Context) (*widget.Session, bool) {
	session, err := app.registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return session, true
}

// handleCreateWidget godoc
// @Summary Create widget session
// @Description Create a city input widget with an empty panel
// @Tags widgets
// @Produce json
// @Success 201 {object} CreateWidgetResponse
// @Router /widgets [post]
func (app *App) handleCreateWidget(c *gin.Context) {
	session := app.registry.Create()
	c.JSON(http.StatusCreated, CreateWidgetResponse{ID: session.ID})
}

// handleGetWidget godoc
// @Summary Get widget state
// @Description Return the input value, suggestion labels, and weather content of a session
// @Tags widgets
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} WidgetResponse
// @Failure 404 {object} map[string]string
// @Router /widgets/{id} [get]
func (app *App) handleGetWidget(c *gin.Context) {
	session, ok := app.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newWidgetResponse(session))
}

// handleWidgetInput godoc
// @Summary Update widget input
// @Description Set the city field. The search runs after the quiet period; poll the session for results.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body WidgetInput true "New input value"
// @Success 202 {object} WidgetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /widgets/{id}/input [put]
func (app *App) handleWidgetInput(c *gin.Context) {
	session, ok := app.session(c)
	if !ok {
		return
	}

	var input WidgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.Input(*input.Value)
	c.JSON(http.StatusAccepted, newWidgetResponse(session))
}

// handleSelectSuggestion godoc
// @Summary Select suggestion
// @Description Click the suggestion at index, rendering that city's weather
// @Tags widgets
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Zero-based suggestion index"
// @Success 200 {object} WidgetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /widgets/{id}/suggestions/{index}/select [post]
func (app *App) handleSelectSuggestion(c *gin.Context) {
	session, ok := app.session(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := session.Panel.Select(index); err != nil {
		if errors.Is(err, widget.ErrSuggestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to select suggestion",
			"session_id", session.ID,
			"index", index,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select suggestion"})
		return
	}

	c.JSON(http.StatusOK, newWidgetResponse(session))
}

// handleDeleteWidget godoc
// @Summary Delete widget session
// @Description Cancel pending searches and discard the session
// @Tags widgets
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /widgets/{id} [delete]
func (app *App) handleDeleteWidget(c *gin.Context) {
	if err := app.registry.Delete(c.Param("id")); err != nil {
		if errors.Is(err, widget.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete widget"})
		return
	}
	c.Status(http.StatusNoContent)
}
