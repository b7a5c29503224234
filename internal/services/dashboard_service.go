package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/cache"
	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// dashboardService implements DashboardService
type dashboardService struct {
	repo         repositories.Repository
	db           *gorm.DB
	logger       *slog.Logger
	cacheManager *cache.CacheManager
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, cacheManager *cache.CacheManager) DashboardService {
	return &dashboardService{
		repo:         repo,
		db:           db,
		logger:       logger,
		cacheManager: cacheManager,
	}
}

// GetOverview returns the aggregate counts shown on the admin dashboard.
// Results are cached briefly; a status update invalidates the cache.
func (s *dashboardService) GetOverview(ctx context.Context) (*DashboardOverviewResponse, error) {
	if s.cacheManager != nil {
		var cached DashboardOverviewResponse
		err := s.cacheManager.Stats.CacheOrExecute(ctx, "dashboard:overview", &cached,
			cache.StatsCacheConfig.TTL, func() (interface{}, error) {
				return s.buildOverview(ctx)
			})
		if err == nil {
			return &cached, nil
		}
		s.logger.Warn("Dashboard cache path failed, computing directly", "error", err)
	}

	return s.buildOverview(ctx)
}

func (s *dashboardService) buildOverview(ctx context.Context) (*DashboardOverviewResponse, error) {
	total, err := s.repo.Dashboard().CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants: %w", err)
	}

	domainCounts, err := s.repo.Dashboard().CountUsersByDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants by domain: %w", err)
	}

	var submissions repositories.DomainCounts
	levels := make(map[string]map[int]int64, 3)
	for _, d := range []models.Domain{models.DomainTech, models.DomainDesign, models.DomainManagement} {
		breakdown, err := s.repo.Dashboard().LevelBreakdown(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s level breakdown: %w", d, err)
		}
		levels[string(d)] = breakdown

		count, err := s.repo.Task().CountByDomain(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s submissions: %w", d, err)
		}
		switch d {
		case models.DomainTech:
			submissions.Tech = count
		case models.DomainDesign:
			submissions.Design = count
		case models.DomainManagement:
			submissions.Management = count
		}
	}

	meetingCounts, err := s.repo.Meeting().CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}

	return &DashboardOverviewResponse{
		TotalApplicants:  total,
		DomainCounts:     domainCounts,
		SubmissionCounts: submissions,
		LevelBreakdown:   levels,
		MeetingCounts:    meetingCounts,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
