package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/cache"
	"github.com/MFC-2025/recruitment-admin-service/internal/events"
	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 1000
)

// applicantService implements ApplicantService
type applicantService struct {
	repo              repositories.Repository
	db                *gorm.DB
	logger            *slog.Logger
	validator         *validator.Validator
	businessValidator *validator.BusinessValidator
	eventPublisher    events.EventPublisher
	cacheManager      *cache.CacheManager
}

// NewApplicantService creates a new applicant service
func NewApplicantService(
	repo repositories.Repository,
	db *gorm.DB,
	logger *slog.Logger,
	v *validator.Validator,
	bv *validator.BusinessValidator,
	publisher events.EventPublisher,
	cacheManager *cache.CacheManager,
) ApplicantService {
	return &applicantService{
		repo:              repo,
		db:                db,
		logger:            logger,
		validator:         v,
		businessValidator: bv,
		eventPublisher:    publisher,
		cacheManager:      cacheManager,
	}
}

// List returns applicants matching the optional domain filter, newest first,
// each enriched with their task submissions, meetings and derived fields.
func (s *applicantService) List(ctx context.Context, req *validator.ListApplicantsRequest) (*ApplicantListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	filters := repositories.UserFilters{
		Query:  req.Query,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	var domainFilter *models.Domain
	if req.Domain != "" {
		d := models.Domain(req.Domain)
		if !d.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDomain, req.Domain)
		}
		domainFilter = &d
		filters.Domain = &d
	}

	if s.cacheManager != nil {
		key := fmt.Sprintf("list:%s:%s:%d:%d", req.Domain, req.Query, page, limit)
		var cached ApplicantListResponse
		err := s.cacheManager.Applicant.CacheOrExecute(ctx, key, &cached,
			cache.ApplicantCacheConfig.TTL, func() (interface{}, error) {
				return s.buildListing(ctx, filters, domainFilter, page, limit)
			})
		if err == nil {
			return &cached, nil
		}
		s.logger.Warn("Applicant list cache path failed, querying directly", "error", err)
	}

	return s.buildListing(ctx, filters, domainFilter, page, limit)
}

func (s *applicantService) buildListing(ctx context.Context, filters repositories.UserFilters, domain *models.Domain, page, limit int) (*ApplicantListResponse, error) {
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to list applicants", "error", err)
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	records, err := s.enrichUsers(ctx, users, domain)
	if err != nil {
		return nil, err
	}

	return &ApplicantListResponse{
		Applicants: records,
		Total:      total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// GetByRegno returns a single applicant with joined tasks and meetings.
// Records are cached under their registration number; a status update
// invalidates the entry.
func (s *applicantService) GetByRegno(ctx context.Context, regno string) (*ApplicantRecord, error) {
	if s.cacheManager != nil {
		var cached ApplicantRecord
		err := s.cacheManager.Applicant.CacheOrExecute(ctx, fmt.Sprintf("regno:%s", regno), &cached,
			cache.ApplicantCacheConfig.TTL, func() (interface{}, error) {
				return s.loadApplicant(ctx, regno)
			})
		if err == nil {
			return &cached, nil
		}
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Warn("Applicant cache path failed, querying directly", "error", err)
	}

	return s.loadApplicant(ctx, regno)
}

func (s *applicantService) loadApplicant(ctx context.Context, regno string) (*ApplicantRecord, error) {
	user, err := s.repo.User().GetByRegno(ctx, regno)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}

	records, err := s.enrichUsers(ctx, []*models.User{user}, nil)
	if err != nil {
		return nil, err
	}

	return records[0], nil
}

// UpdateStatus applies a partial status update to the applicant identified
// by registration number. Only fields present in the request are written;
// everything else is left untouched. The write is a single atomic field
// merge at the store level.
func (s *applicantService) UpdateStatus(ctx context.Context, req *validator.UpdateStatusRequest, changedBy string) (*models.User, error) {
	if req.Regno == "" {
		return nil, fmt.Errorf("%w: regno is required", ErrInvalidInput)
	}

	if errs := s.businessValidator.ValidateStatusUpdate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	fields := make(map[string]interface{})
	if req.Tech != nil {
		fields["tech"] = *req.Tech
	}
	if req.Design != nil {
		fields["design"] = *req.Design
	}
	if req.Management != nil {
		fields["management"] = *req.Management
	}
	if req.AdminNotes != nil {
		fields["admin_notes"] = *req.AdminNotes
	}

	if err := s.repo.User().UpdateFieldsByRegno(ctx, req.Regno, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to update applicant status", "regno", req.Regno, "error", err)
		return nil, fmt.Errorf("failed to update applicant status: %w", err)
	}

	user, err := s.repo.User().GetByRegno(ctx, req.Regno)
	if err != nil {
		return nil, fmt.Errorf("failed to reload applicant: %w", err)
	}

	s.publishStatusChanged(ctx, req, changedBy)

	if s.cacheManager != nil {
		cache.InvalidateApplicantCache(ctx, s.cacheManager, req.Regno)
	}

	s.logger.Info("Applicant status updated",
		"regno", req.Regno,
		"changed_by", changedBy)

	return user, nil
}

func (s *applicantService) publishStatusChanged(ctx context.Context, req *validator.UpdateStatusRequest, changedBy string) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventApplicantStatusChanged, events.StatusChangedEvent{
		Regno:      req.Regno,
		Tech:       req.Tech,
		Design:     req.Design,
		Management: req.Management,
		ChangedBy:  changedBy,
		AdminNotes: req.AdminNotes,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		// Status change already committed; the event is best effort.
		s.logger.Error("Failed to publish status change event",
			"regno", req.Regno,
			"error", err)
	}
}
