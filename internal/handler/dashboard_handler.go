package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegt/chrms-backend/internal/response"
	"github.com/onegt/chrms-backend/internal/service"
)

// DashboardHandler handles dashboard metric endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetTalentStats godoc
// GET /api/v1/talent/stats
// Returns the recruitment dashboard metrics.
func (h *DashboardHandler) GetTalentStats(c *gin.Context) {
	stats, err := h.dashboardService.GetTalentStats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
