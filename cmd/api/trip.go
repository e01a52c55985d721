package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TripQueryInput is the body of a trip query
type TripQueryInput struct {
	Query string `json:"query" form:"q" binding:"required,max=500" example:"I'm visiting New York, what is the temperature there?"`
}

// handlePostTripQuery godoc
// @Summary Answer a travel query
// @Description Classify a natural-language travel query, resolve the place it mentions and return weather and/or nearby attractions. An unknown place yields 200 with fatal_error set; unavailable data sources yield warnings.
// @Tags trip
// @Accept json
// @Produce json
// @Param request body TripQueryInput true "Travel query"
// @Success 200 {object} planner.Response
// @Failure 400 {object} map[string]string
// @Router /trip/query [post]
func (app *App) handlePostTripQuery(c *gin.Context) {
	var input TripQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app.answer(c, input.Query)
}

// handleGetTripQuery godoc
// @Summary Answer a travel query
// @Description Same as POST /trip/query with the query passed as a URL parameter
// @Tags trip
// @Produce json
// @Param q query string true "Travel query" example(What's the weather in Tokyo?)
// @Success 200 {object} planner.Response
// @Failure 400 {object} map[string]string
// @Router /trip/query [get]
func (app *App) handleGetTripQuery(c *gin.Context) {
	var input TripQueryInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app.answer(c, input.Query)
}

func (app *App) answer(c *gin.Context, query string) {
	ctx := c.Request.Context()
	if app.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.requestTimeout)
		defer cancel()
	}

	c.JSON(http.StatusOK, app.plannerService.Handle(ctx, query))
}
