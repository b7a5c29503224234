package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
}

func NewAuthHandler(service services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Login authenticates an admin
// @Summary Admin login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validator.LoginRequest true "Credentials"
// @Success 200 {object} services.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Not an admin account"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Admin login")

	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Admin logout")
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated admin's identity from the token claims
// @Summary Current admin
// @Tags auth
// @Produce json
// @Success 200 {object} services.AdminInfo
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetUint("user_id"),
		"email": c.GetString("user_email"),
		"admin": c.GetBool("is_admin"),
	})
}
