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

// meetingService implements MeetingService
type meetingService struct {
	repo              repositories.Repository
	logger            *slog.Logger
	validator         *validator.Validator
	businessValidator *validator.BusinessValidator
	eventPublisher    events.EventPublisher
	cacheManager      *cache.CacheManager
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	bv *validator.BusinessValidator,
	publisher events.EventPublisher,
	cacheManager *cache.CacheManager,
) MeetingService {
	return &meetingService{
		repo:              repo,
		logger:            logger,
		validator:         v,
		businessValidator: bv,
		eventPublisher:    publisher,
		cacheManager:      cacheManager,
	}
}

// Schedule creates an interview meeting for an applicant
func (s *meetingService) Schedule(ctx context.Context, req *validator.ScheduleMeetingRequest) (*models.Meeting, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up applicant: %w", err)
	}

	meeting := &models.Meeting{
		UserID:            req.UserID,
		InterviewerEmails: req.InterviewerEmails,
		ScheduledTime:     req.ScheduledTime,
		EndTime:           req.EndTime,
		MeetLink:          req.MeetLink,
		Status:            models.MeetingScheduled,
	}

	if err := s.repo.Meeting().Create(ctx, meeting); err != nil {
		s.logger.Error("Failed to schedule meeting", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to schedule meeting: %w", err)
	}

	s.publishMeetingEvent(ctx, events.EventMeetingScheduled, meeting)

	if s.cacheManager != nil {
		cache.InvalidateMeetingCache(ctx, s.cacheManager, meeting.UserID)
	}

	s.logger.Info("Meeting scheduled",
		"meeting_id", meeting.ID,
		"user_id", meeting.UserID,
		"scheduled_time", meeting.ScheduledTime)

	return meeting, nil
}

// ListByUser returns an applicant's meetings ordered by scheduled time
func (s *meetingService) ListByUser(ctx context.Context, userID uint) ([]*models.Meeting, error) {
	meetings, err := s.repo.Meeting().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// UpdateStatus transitions a meeting through its lifecycle. Completed and
// cancelled are terminal.
func (s *meetingService) UpdateStatus(ctx context.Context, id uint, status models.MeetingStatus) (*models.Meeting, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, status)
	}

	meeting, err := s.repo.Meeting().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if errs := s.businessValidator.ValidateMeetingStatusTransition(meeting.Status, status); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatusChange, errs.Error())
	}

	if err := s.repo.Meeting().UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Failed to update meeting status", "meeting_id", id, "error", err)
		return nil, fmt.Errorf("failed to update meeting status: %w", err)
	}

	meeting.Status = status
	s.publishMeetingEvent(ctx, events.EventMeetingStatusChanged, meeting)

	if s.cacheManager != nil {
		cache.InvalidateMeetingCache(ctx, s.cacheManager, meeting.UserID)
	}

	return meeting, nil
}

func (s *meetingService) publishMeetingEvent(ctx context.Context, eventType string, meeting *models.Meeting) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(eventType, events.MeetingEvent{
		MeetingID:     meeting.ID,
		UserID:        meeting.UserID,
		Status:        string(meeting.Status),
		ScheduledTime: meeting.ScheduledTime,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish meeting event",
			"event_type", eventType,
			"meeting_id", meeting.ID,
			"error", err)
	}
}
