package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
)

type HealthHandler struct {
	store     store.Store
	startTime time.Time
	version   string
}

func NewHealthHandler(s store.Store, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		store:     s,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Reports whether the entity store answers reads
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.store.ListAuthors(ctx); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store": gin.H{
				"status": "down",
				"error":  err.Error(),
			},
		})
		return
	}

	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
		"store": gin.H{
			"status": "up",
		},
	})
}
