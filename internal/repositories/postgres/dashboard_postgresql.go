package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// DashboardPostgreSQL implements DashboardRepository for PostgreSQL
type DashboardPostgreSQL struct {
	db *gorm.DB
}

// NewDashboardPostgreSQL creates a new PostgreSQL dashboard repository
func NewDashboardPostgreSQL(db *gorm.DB) repositories.DashboardRepository {
	return &DashboardPostgreSQL{db: db}
}

func (r *DashboardPostgreSQL) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	if err != nil {
		return 0, handleDBError(err, "failed to count users")
	}
	return count, nil
}

func (r *DashboardPostgreSQL) CountUsersByDomain(ctx context.Context) (repositories.DomainCounts, error) {
	var counts repositories.DomainCounts

	for _, d := range []struct {
		domain models.Domain
		dest   *int64
	}{
		{models.DomainTech, &counts.Tech},
		{models.DomainDesign, &counts.Design},
		{models.DomainManagement, &counts.Management},
	} {
		err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("domains @> ?::jsonb", fmt.Sprintf("[%q]", string(d.domain))).
			Count(d.dest).Error
		if err != nil {
			return counts, handleDBError(err, "failed to count users by domain")
		}
	}

	return counts, nil
}

// LevelBreakdown returns the number of users at each status level within a
// domain. Levels with no users are omitted.
func (r *DashboardPostgreSQL) LevelBreakdown(ctx context.Context, domain models.Domain) (repositories.LevelBreakdown, error) {
	column, err := levelColumn(domain)
	if err != nil {
		return nil, err
	}

	rows := []struct {
		Level int
		Count int64
	}{}

	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(column+" as level, COUNT(*) as count").
		Where("domains @> ?::jsonb", fmt.Sprintf("[%q]", string(domain))).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, handleDBError(err, "failed to get level breakdown")
	}

	breakdown := make(repositories.LevelBreakdown, len(rows))
	for _, row := range rows {
		breakdown[row.Level] = row.Count
	}
	return breakdown, nil
}

func levelColumn(domain models.Domain) (string, error) {
	switch domain {
	case models.DomainTech:
		return "tech", nil
	case models.DomainDesign:
		return "design", nil
	case models.DomainManagement:
		return "management", nil
	default:
		return "", fmt.Errorf("unknown domain: %s", domain)
	}
}
