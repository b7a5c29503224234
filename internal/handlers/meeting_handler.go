package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

type MeetingHandler struct {
	BaseHandler
	service services.MeetingService
}

func NewMeetingHandler(service services.MeetingService, logger utils.Logger) *MeetingHandler {
	return &MeetingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ScheduleMeeting creates an interview meeting for an applicant
// @Summary Schedule meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body validator.ScheduleMeetingRequest true "Meeting details"
// @Success 201 {object} models.Meeting
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Applicant not found"
// @Router /meetings [post]
func (h *MeetingHandler) ScheduleMeeting(c *gin.Context) {
	h.LogRequest(c, "Scheduling meeting")

	var req validator.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	meeting, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// ListMeetingsByUser returns all meetings for one applicant
// @Summary List applicant meetings
// @Tags meetings
// @Produce json
// @Param user_id path int true "Applicant user ID"
// @Success 200 {array} models.Meeting
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /meetings/user/{user_id} [get]
func (h *MeetingHandler) ListMeetingsByUser(c *gin.Context) {
	h.LogRequest(c, "Listing meetings")

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid user ID",
		})
		return
	}

	meetings, err := h.service.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// UpdateMeetingStatus transitions a meeting's lifecycle status
// @Summary Update meeting status
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body validator.UpdateMeetingStatusRequest true "New status"
// @Success 200 {object} models.Meeting
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Router /meetings/{id}/status [put]
func (h *MeetingHandler) UpdateMeetingStatus(c *gin.Context) {
	h.LogRequest(c, "Updating meeting status")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid meeting ID",
		})
		return
	}

	var req validator.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	meeting, err := h.service.UpdateStatus(c.Request.Context(), uint(id), models.MeetingStatus(req.Status))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}
