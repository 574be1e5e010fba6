package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is the liveness probe of the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// Health godoc
// @Summary Server health check
// @Description Verifies the server and its Redis connection are alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Server healthy"
// @Failure 503 {object} map[string]string "Store unreachable"
// @Router /api/health [get]
func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
