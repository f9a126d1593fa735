package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thelineup/draft-engine/internal/models"
)

type HealthHandler struct {
	pool *models.PlayerPool
}

func NewHealthHandler(pool *models.PlayerPool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// GetHealth returns basic health status - always returns 200 if server is running
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "draft-engine",
		"timestamp": time.Now().UTC(),
	})
}

// GetReady returns readiness status - 200 only once the player pool is loaded
func (h *HealthHandler) GetReady(c *gin.Context) {
	if h.pool == nil || h.pool.Size() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "player pool not loaded",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"players": h.pool.Size(),
	})
}
