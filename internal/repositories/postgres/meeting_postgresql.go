package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// MeetingPostgreSQL implements MeetingRepository for PostgreSQL
type MeetingPostgreSQL struct {
	db *gorm.DB
}

// NewMeetingPostgreSQL creates a new PostgreSQL meeting repository
func NewMeetingPostgreSQL(db *gorm.DB) repositories.MeetingRepository {
	return &MeetingPostgreSQL{db: db}
}

func (r *MeetingPostgreSQL) Create(ctx context.Context, meeting *models.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return handleDBError(err, "failed to create meeting")
	}
	return nil
}

func (r *MeetingPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, id).Error; err != nil {
		return nil, handleDBError(err, "failed to get meeting by ID")
	}
	return &meeting, nil
}

func (r *MeetingPostgreSQL) ByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("scheduled_time ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, handleDBError(err, "failed to get meetings by user IDs")
	}

	byUser := make(map[uint][]*models.Meeting, len(meetings))
	for _, m := range meetings {
		byUser[m.UserID] = append(byUser[m.UserID], m)
	}
	return byUser, nil
}

func (r *MeetingPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_time ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, handleDBError(err, "failed to list meetings for user")
	}
	return meetings, nil
}

// UpdateStatus transitions a meeting to the given status. Returns
// gorm.ErrRecordNotFound when the meeting does not exist.
func (r *MeetingPostgreSQL) UpdateStatus(ctx context.Context, id uint, status models.MeetingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Meeting{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return handleDBError(result.Error, "failed to update meeting status")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MeetingPostgreSQL) CountByStatus(ctx context.Context) (repositories.MeetingCounts, error) {
	var counts repositories.MeetingCounts

	rows := []struct {
		Status models.MeetingStatus
		Count  int64
	}{}

	err := r.db.WithContext(ctx).
		Model(&models.Meeting{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return counts, handleDBError(err, "failed to count meetings by status")
	}

	for _, row := range rows {
		switch row.Status {
		case models.MeetingScheduled:
			counts.Scheduled = row.Count
		case models.MeetingUnderway:
			counts.Underway = row.Count
		case models.MeetingCompleted:
			counts.Completed = row.Count
		case models.MeetingCancelled:
			counts.Cancelled = row.Count
		}
	}

	return counts, nil
}
