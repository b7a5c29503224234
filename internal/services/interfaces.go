package services

import (
	"context"
	"time"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

// ===== RESPONSE DTOs =====

// SubdomainBucket partitions applicant user IDs by submission status
type SubdomainBucket struct {
	Submitted    []uint `json:"submitted"`
	NotSubmitted []uint `json:"notSubmitted"`
}

// SubdomainReport maps canonical subdomain labels to their cohorts.
// Buckets are created lazily, so only labels with at least one applicant
// appear as keys.
type SubdomainReport map[string]*SubdomainBucket

// ApplicantRecord is a user enriched with joined tasks, meetings and
// derived submission fields.
type ApplicantRecord struct {
	models.User
	TechTasks       []*models.TechTask       `json:"techTasks,omitempty"`
	DesignTasks     []*models.DesignTask     `json:"designTasks,omitempty"`
	ManagementTasks []*models.ManagementTask `json:"managementTasks,omitempty"`
	Meetings        []*models.Meeting        `json:"meetings,omitempty"`
	MeetingTime     *time.Time               `json:"meetingTime,omitempty"`
	MeetStatus      *models.MeetingStatus    `json:"meetStatus,omitempty"`
	HasSubmitted    bool                     `json:"hasSubmitted"`
}

// ApplicantListResponse is a paginated applicant listing
type ApplicantListResponse struct {
	Applicants []*ApplicantRecord `json:"applicants"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// LoginResponse carries the issued token and the authenticated admin
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      AdminInfo `json:"user"`
}

// AdminInfo is the public view of an authenticated admin account
type AdminInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Regno    string `json:"regno"`
}

// DashboardOverviewResponse aggregates counts shown on the admin dashboard
type DashboardOverviewResponse struct {
	TotalApplicants  int64                      `json:"total_applicants"`
	DomainCounts     repositories.DomainCounts  `json:"domain_counts"`
	SubmissionCounts repositories.DomainCounts  `json:"submission_counts"`
	LevelBreakdown   map[string]map[int]int64   `json:"level_breakdown"`
	MeetingCounts    repositories.MeetingCounts `json:"meeting_counts"`
	GeneratedAt      time.Time                  `json:"generated_at"`
}

// ===== SERVICE INTERFACES =====

// ApplicantService exposes applicant listing, lookup and status updates
type ApplicantService interface {
	List(ctx context.Context, req *validator.ListApplicantsRequest) (*ApplicantListResponse, error)
	GetByRegno(ctx context.Context, regno string) (*ApplicantRecord, error)
	UpdateStatus(ctx context.Context, req *validator.UpdateStatusRequest, changedBy string) (*models.User, error)
}

// SegregationService groups task submissions into subdomain cohorts
type SegregationService interface {
	Report(ctx context.Context, domain models.Domain) (SubdomainReport, error)
}

// AuthService authenticates admins and manages access tokens
type AuthService interface {
	Login(ctx context.Context, req *validator.LoginRequest) (*LoginResponse, error)
	ParseToken(token string) (*TokenClaims, error)
}

// MeetingService manages interview meetings
type MeetingService interface {
	Schedule(ctx context.Context, req *validator.ScheduleMeetingRequest) (*models.Meeting, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Meeting, error)
	UpdateStatus(ctx context.Context, id uint, status models.MeetingStatus) (*models.Meeting, error)
}

// DashboardService computes dashboard overview statistics
type DashboardService interface {
	GetOverview(ctx context.Context) (*DashboardOverviewResponse, error)
}

// ExportService produces spreadsheet exports of applicant data
type ExportService interface {
	ExportApplicants(ctx context.Context, domain string) ([]byte, string, error)
}

// ServiceManager provides access to all services with lifecycle management
type ServiceManager interface {
	Applicant() ApplicantService
	Segregation() SegregationService
	Auth() AuthService
	Meeting() MeetingService
	Dashboard() DashboardService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
