package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetOverview returns aggregate dashboard counts
// @Summary Dashboard overview
// @Description Applicant totals, per-domain counts, status level breakdowns and meeting counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardOverviewResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard overview")

	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
