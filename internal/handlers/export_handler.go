package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewExportHandler(service services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportApplicants streams an xlsx export of applicants
// @Summary Export applicants
// @Description Download applicant data as a spreadsheet, optionally filtered by domain
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param domain query string false "Domain filter: tech, design or management"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /exports/applicants [get]
func (h *ExportHandler) ExportApplicants(c *gin.Context) {
	h.LogRequest(c, "Exporting applicants")

	var req validator.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	data, filename, err := h.service.ExportApplicants(c.Request.Context(), req.Domain)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
