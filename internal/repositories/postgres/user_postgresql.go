package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// UserPostgreSQL implements UserRepository for PostgreSQL
type UserPostgreSQL struct {
	db *gorm.DB
}

// NewUserPostgreSQL creates a new PostgreSQL user repository
func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

func (r *UserPostgreSQL) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, handleDBError(err, "failed to get user by ID")
	}
	return &user, nil
}

func (r *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, handleDBError(err, "failed to get user by email")
	}
	return &user, nil
}

func (r *UserPostgreSQL) GetByRegno(ctx context.Context, regno string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("regno = ?", regno).First(&user).Error
	if err != nil {
		return nil, handleDBError(err, "failed to get user by regno")
	}
	return &user, nil
}

// List returns users matching the filters, newest first, with the total
// matching count before pagination.
func (r *UserPostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := applyUserFilters(r.db.WithContext(ctx).Model(&models.User{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "failed to count users")
	}

	query = applyPagination(query.Order("created_at DESC"), filters.Limit, filters.Offset)

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, handleDBError(err, "failed to list users")
	}

	return users, total, nil
}

// UpdateFieldsByRegno applies a partial field update to the user identified
// by regno in a single statement. Returns gorm.ErrRecordNotFound when no
// user matches.
func (r *UserPostgreSQL) UpdateFieldsByRegno(ctx context.Context, regno string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("regno = ?", regno).Updates(fields)
	if result.Error != nil {
		return handleDBError(result.Error, "failed to update user fields")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserPostgreSQL) ExistsByRegno(ctx context.Context, regno string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("regno = ?", regno).Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "failed to check user existence")
	}
	return count > 0, nil
}
