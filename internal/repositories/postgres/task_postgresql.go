package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// TaskPostgreSQL implements TaskRepository for PostgreSQL
type TaskPostgreSQL struct {
	db *gorm.DB
}

// NewTaskPostgreSQL creates a new PostgreSQL task repository
func NewTaskPostgreSQL(db *gorm.DB) repositories.TaskRepository {
	return &TaskPostgreSQL{db: db}
}

func (r *TaskPostgreSQL) ListTech(ctx context.Context) ([]*models.TechTask, error) {
	var tasks []*models.TechTask
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to list tech tasks")
	}
	return tasks, nil
}

func (r *TaskPostgreSQL) ListDesign(ctx context.Context) ([]*models.DesignTask, error) {
	var tasks []*models.DesignTask
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to list design tasks")
	}
	return tasks, nil
}

func (r *TaskPostgreSQL) ListManagement(ctx context.Context) ([]*models.ManagementTask, error) {
	var tasks []*models.ManagementTask
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to list management tasks")
	}
	return tasks, nil
}

func (r *TaskPostgreSQL) TechByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.TechTask, error) {
	var tasks []*models.TechTask
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to get tech tasks by user IDs")
	}

	byUser := make(map[uint][]*models.TechTask, len(tasks))
	for _, t := range tasks {
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}
	return byUser, nil
}

func (r *TaskPostgreSQL) DesignByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.DesignTask, error) {
	var tasks []*models.DesignTask
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to get design tasks by user IDs")
	}

	byUser := make(map[uint][]*models.DesignTask, len(tasks))
	for _, t := range tasks {
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}
	return byUser, nil
}

func (r *TaskPostgreSQL) ManagementByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.ManagementTask, error) {
	var tasks []*models.ManagementTask
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&tasks).Error; err != nil {
		return nil, handleDBError(err, "failed to get management tasks by user IDs")
	}

	byUser := make(map[uint][]*models.ManagementTask, len(tasks))
	for _, t := range tasks {
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}
	return byUser, nil
}

func (r *TaskPostgreSQL) CountByDomain(ctx context.Context, domain models.Domain) (int64, error) {
	var count int64
	var err error

	switch domain {
	case models.DomainTech:
		err = r.db.WithContext(ctx).Model(&models.TechTask{}).Count(&count).Error
	case models.DomainDesign:
		err = r.db.WithContext(ctx).Model(&models.DesignTask{}).Count(&count).Error
	case models.DomainManagement:
		err = r.db.WithContext(ctx).Model(&models.ManagementTask{}).Count(&count).Error
	default:
		return 0, fmt.Errorf("unknown domain: %s", domain)
	}

	if err != nil {
		return 0, handleDBError(err, "failed to count tasks")
	}
	return count, nil
}
