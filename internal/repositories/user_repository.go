package repositories

import (
	"context"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// UserRepository provides access to applicant identity records.
type UserRepository interface {
	// Basic read operations
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRegno(ctx context.Context, regno string) (*models.User, error)

	// List returns users matching the filters ordered by creation time
	// descending, plus the total match count before pagination.
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)

	// UpdateFieldsByRegno applies a partial field merge to the user with the
	// given registration number as a single atomic UPDATE. It returns
	// gorm.ErrRecordNotFound when no row matches.
	UpdateFieldsByRegno(ctx context.Context, regno string, fields map[string]interface{}) error

	// Validation and checks
	ExistsByRegno(ctx context.Context, regno string) (bool, error)
}
