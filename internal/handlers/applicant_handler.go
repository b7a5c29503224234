package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

type ApplicantHandler struct {
	BaseHandler
	service services.ApplicantService
}

func NewApplicantHandler(service services.ApplicantService, logger utils.Logger) *ApplicantHandler {
	return &ApplicantHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListApplicants returns applicants with joined tasks and meetings
// @Summary List applicants
// @Description List applicants with their task submissions, meetings and derived fields, newest first
// @Tags applicants
// @Produce json
// @Param domain query string false "Domain filter: tech, design or management"
// @Param query query string false "Search by username, email or regno"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 1000)"
// @Success 200 {object} services.ApplicantListResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /applicants [get]
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	h.LogRequest(c, "Listing applicants")

	var req validator.ListApplicantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetApplicant returns a single applicant by registration number
// @Summary Get applicant
// @Tags applicants
// @Produce json
// @Param regno path string true "Registration number"
// @Success 200 {object} services.ApplicantRecord
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /applicants/{regno} [get]
func (h *ApplicantHandler) GetApplicant(c *gin.Context) {
	h.LogRequest(c, "Getting applicant")

	record, err := h.service.GetByRegno(c.Request.Context(), c.Param("regno"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateStatus applies a partial status update to an applicant
// @Summary Update applicant status
// @Description Apply only the provided fields (tech, design, management, adminNotes); omitted fields are untouched
// @Tags applicants
// @Accept json
// @Produce json
// @Param regno path string true "Registration number"
// @Param request body validator.UpdateStatusRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /applicants/{regno}/status [patch]
func (h *ApplicantHandler) UpdateStatus(c *gin.Context) {
	h.LogRequest(c, "Updating applicant status")

	var req validator.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	// The path parameter is authoritative; a mismatched body regno is rejected.
	pathRegno := c.Param("regno")
	if req.Regno == "" {
		req.Regno = pathRegno
	} else if req.Regno != pathRegno {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Registration number mismatch between path and body",
		})
		return
	}

	user, err := h.service.UpdateStatus(c.Request.Context(), &req, c.GetString("user_email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
