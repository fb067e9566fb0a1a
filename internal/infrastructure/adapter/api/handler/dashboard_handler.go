package handler

import (
	"net/http"

	domainerr "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles balance summary HTTP requests
type DashboardHandler struct {
	dashboardService usecaseport.DashboardUseCase
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(
	dashboardService usecaseport.DashboardUseCase,
	logger coreport.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Summary handles the GET /api/dashboard endpoint. Unlike the other
// endpoints the response carries no status envelope, only the three totals.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := parseID(c.Query("user_id"))
	if userID == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(msgIncompleteData))
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Dashboard summary failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(domainerr.HTTPStatus(err), dto.Error(msgServerError))
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Saldo:       summary.Balance,
		Pemasukan:   summary.TotalIncome,
		Pengeluaran: summary.TotalExpense,
	})
}
