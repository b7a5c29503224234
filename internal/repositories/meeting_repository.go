package repositories

import (
	"context"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// MeetingRepository provides access to scheduled interview records.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, id uint) (*models.Meeting, error)

	// ByUserIDs returns meetings grouped by owning user for the listing join.
	ByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.Meeting, error)

	ListByUser(ctx context.Context, userID uint) ([]*models.Meeting, error)

	// UpdateStatus moves a meeting to a new status as a single UPDATE.
	// Returns gorm.ErrRecordNotFound when no row matches.
	UpdateStatus(ctx context.Context, id uint, status models.MeetingStatus) error

	CountByStatus(ctx context.Context) (MeetingCounts, error)
}
