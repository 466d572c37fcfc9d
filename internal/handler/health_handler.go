package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Check func(ctx context.Context) error

// HealthHandler reports the state of optional backends by name.
type HealthHandler struct {
	checks map[string]Check
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	res := gin.H{"status": "healthy"}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			res[name] = "disconnected"
			res["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		res[name] = "connected"
	}

	c.JSON(code, res)
}
