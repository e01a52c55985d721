package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "trip-agent"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// PingResponse reports liveness plus what is running and for how long
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Service string `json:"service" example:"trip-agent"`
	Version string `json:"version" example:"1.4.0"`
	Uptime  string `json:"uptime" example:"2h13m5s"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and report its version and uptime
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: serviceName,
		Version: version,
		Uptime:  time.Since(app.startedAt).Truncate(time.Second).String(),
	})
}
