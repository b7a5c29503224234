package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	service services.SegregationService
}

func NewReportHandler(service services.SegregationService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetSubdomainReport returns the subdomain cohort report for a domain
// @Summary Subdomain segregation report
// @Description Group a domain's task submissions into subdomain buckets of submitted and not-submitted applicant IDs
// @Tags reports
// @Produce json
// @Param domain path string true "Domain: tech, design or management"
// @Success 200 {object} services.SubdomainReport
// @Failure 400 {object} ErrorResponse "Unknown domain"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports/subdomains/{domain} [get]
func (h *ReportHandler) GetSubdomainReport(c *gin.Context) {
	h.LogRequest(c, "Building subdomain report")

	domain := models.Domain(c.Param("domain"))

	report, err := h.service.Report(c.Request.Context(), domain)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
