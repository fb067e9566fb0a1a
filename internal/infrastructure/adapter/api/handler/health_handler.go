package handler

import (
	"net/http"

	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and database liveness
type HealthHandler struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(dbManager *database.Manager, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		dbManager: dbManager,
		logger:    logger,
	}
}

// Check handles the GET /health endpoint. The ping is bounded by the
// configured query timeout so a hung pool cannot stall the check.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := h.dbManager.WithTimeout(c.Request.Context())
	defer cancel()

	if err := h.dbManager.Ping(ctx); err != nil {
		h.logger.Warn("Health check database ping failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "connected",
	})
}
