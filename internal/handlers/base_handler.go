package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
)

// ErrorResponse is the JSON error body returned by all handlers
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// BaseHandler provides shared logging and error mapping for handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs an incoming request at debug level
func (h *BaseHandler) LogRequest(c *gin.Context, msg string) {
	h.logger.Debug(msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"))
}

// LogError logs a handler error with request context
func (h *BaseHandler) LogError(c *gin.Context, err error, msg string) {
	h.logger.Error(msg,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"))
}

// handleServiceError maps service errors to HTTP status codes
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidDomain):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid input",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStatusChange):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Invalid status change",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Resource not found",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid credentials",
		})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Unauthorized",
		})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
