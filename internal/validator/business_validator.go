package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

var regnoPattern = regexp.MustCompile(`^[A-Za-z0-9]{4,20}$`)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateStatusUpdate validates an applicant status update request
func (bv *BusinessValidator) ValidateStatusUpdate(req *UpdateStatusRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if !req.HasChanges() {
		errors = append(errors, ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateLevelTransition validates a status level transition for one domain.
// Promotion advances one round at a time and stops at the final round;
// a rejected applicant stays rejected until reset; reset always returns
// to the registered level.
func (bv *BusinessValidator) ValidateLevelTransition(current, next int) ValidationErrors {
	var errors ValidationErrors

	if next < models.LevelRejected || next > models.MaxRound {
		errors = append(errors, ValidationError{
			Field:   "level",
			Message: fmt.Sprintf("level must be between %d and %d", models.LevelRejected, models.MaxRound),
			Value:   next,
			Rule:    "status_level",
		})
		return errors
	}

	switch {
	case next == models.LevelRejected:
		// Rejection is allowed from any state.
	case next == models.LevelRegistered:
		// Reset is allowed from any state.
	case current == models.LevelRejected:
		errors = append(errors, ValidationError{
			Field:   "level",
			Message: "cannot promote a rejected applicant",
			Value:   next,
			Rule:    "status_transition",
		})
	case next != current+1:
		errors = append(errors, ValidationError{
			Field:   "level",
			Message: fmt.Sprintf("cannot move from round %d to round %d", current, next),
			Value:   next,
			Rule:    "status_transition",
		})
	}

	return errors
}

// ValidateMeetingStatusTransition validates a meeting status transition
func (bv *BusinessValidator) ValidateMeetingStatusTransition(current, next models.MeetingStatus) ValidationErrors {
	var errors ValidationErrors

	allowedTransitions := map[models.MeetingStatus][]models.MeetingStatus{
		models.MeetingScheduled: {models.MeetingUnderway, models.MeetingCompleted, models.MeetingCancelled},
		models.MeetingUnderway:  {models.MeetingCompleted, models.MeetingCancelled},
		models.MeetingCompleted: {},
		models.MeetingCancelled: {},
	}

	allowed := false
	for _, s := range allowedTransitions[current] {
		if next == s {
			allowed = true
			break
		}
	}

	if !allowed {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("cannot transition from %s to %s", current, next),
			Value:   next,
			Rule:    "status_transition",
		})
	}

	return errors
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	// Registration number format
	bv.validate.RegisterValidation("regno", func(fl validator.FieldLevel) bool {
		regno := strings.TrimSpace(fl.Field().String())
		return regnoPattern.MatchString(regno)
	})

	// Status level range (-1 rejected through final round)
	bv.validate.RegisterValidation("status_level", func(fl validator.FieldLevel) bool {
		level := fl.Field().Int()
		return level >= int64(models.LevelRejected) && level <= int64(models.MaxRound)
	})
}
