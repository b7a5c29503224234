package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// handleDBError wraps database errors with context while preserving sentinel errors
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// applyUserFilters applies the optional user listing filters to a query
func applyUserFilters(query *gorm.DB, filters repositories.UserFilters) *gorm.DB {
	if filters.Domain != nil {
		query = query.Where("domains @> ?::jsonb", fmt.Sprintf("[%q]", string(*filters.Domain)))
	}

	if q := strings.TrimSpace(filters.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(regno) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	return query
}

// applyPagination applies limit and offset when set
func applyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
