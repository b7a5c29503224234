package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MFC-2025/recruitment-admin-service/internal/services"
	"github.com/MFC-2025/recruitment-admin-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	applicantHandler *ApplicantHandler
	reportHandler    *ReportHandler
	meetingHandler   *MeetingHandler
	dashboardHandler *DashboardHandler
	exportHandler    *ExportHandler
	authMiddleware   *JWTAuthMiddleware
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), logger),
		applicantHandler: NewApplicantHandler(serviceManager.Applicant(), logger),
		reportHandler:    NewReportHandler(serviceManager.Segregation(), logger),
		meetingHandler:   NewMeetingHandler(serviceManager.Meeting(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		exportHandler:    NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:   NewJWTAuthMiddleware(serviceManager.Auth()),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Login is the only unauthenticated API route
		v1.POST("/auth/login", hm.authHandler.Login)

		authed := v1.Group("")
		authed.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireAdmin())
		{
			authed.GET("/auth/me", hm.authHandler.Me)
			authed.POST("/auth/logout", hm.authHandler.Logout)

			applicants := authed.Group("/applicants")
			{
				applicants.GET("", hm.applicantHandler.ListApplicants)
				applicants.GET("/:regno", hm.applicantHandler.GetApplicant)
				applicants.PATCH("/:regno/status", hm.applicantHandler.UpdateStatus)
			}

			reports := authed.Group("/reports")
			{
				reports.GET("/subdomains/:domain", hm.reportHandler.GetSubdomainReport)
			}

			meetings := authed.Group("/meetings")
			{
				meetings.POST("", hm.meetingHandler.ScheduleMeeting)
				meetings.GET("/user/:user_id", hm.meetingHandler.ListMeetingsByUser)
				meetings.PUT("/:id/status", hm.meetingHandler.UpdateMeetingStatus)
			}

			authed.GET("/dashboard/overview", hm.dashboardHandler.GetOverview)
			authed.GET("/exports/applicants", hm.exportHandler.ExportApplicants)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "recruitment-admin-service",
		})
	})
}
