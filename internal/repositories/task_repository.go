package repositories

import (
	"context"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// TaskRepository provides access to questionnaire submissions. The joins onto
// users are performed application-side, so the by-owner lookups return maps
// keyed by user id.
type TaskRepository interface {
	// Full-collection reads for the segregation report.
	ListTech(ctx context.Context) ([]*models.TechTask, error)
	ListDesign(ctx context.Context) ([]*models.DesignTask, error)
	ListManagement(ctx context.Context) ([]*models.ManagementTask, error)

	// Indexed reads for the applicant listing joins.
	TechByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.TechTask, error)
	DesignByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.DesignTask, error)
	ManagementByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.ManagementTask, error)

	// Counts for the dashboard.
	CountByDomain(ctx context.Context, domain models.Domain) (int64, error)
}
