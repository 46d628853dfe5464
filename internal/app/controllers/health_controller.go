package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unischedule/internal/app/models/dto"
)

// HealthMessage is returned by the liveness endpoint
const HealthMessage = "University scheduling service is running"

// HealthController answers liveness checks
type HealthController struct {
	now func() time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{now: time.Now}
}

// Check reports that the process is serving requests. It does not touch the database.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Message:   HealthMessage,
		Timestamp: c.now().UTC(),
	})
}
