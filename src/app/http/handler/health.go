package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoboard/src/core/usecase"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	healthService *usecase.HealthService
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health handles GET /health. A degraded service still answers 200;
// the body carries per-component state.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Check(c.Request.Context()))
}
