package repositories

import (
	"context"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// DashboardRepository serves the aggregate counts behind the admin charts.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersByDomain(ctx context.Context) (DomainCounts, error)
	LevelBreakdown(ctx context.Context, domain models.Domain) (LevelBreakdown, error)
}
