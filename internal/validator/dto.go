package validator

import "time"

// LoginRequest represents the request structure for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ListApplicantsRequest represents query parameters for applicant listings
type ListApplicantsRequest struct {
	Domain string `json:"domain" form:"domain" validate:"omitempty,oneof=tech design management"`
	Query  string `json:"query" form:"query" validate:"omitempty,max=100"`
	Page   int    `json:"page" form:"page" validate:"omitempty,min=1"`
	Limit  int    `json:"limit" form:"limit" validate:"omitempty,min=1,max=1000"`
}

// UpdateStatusRequest represents a partial status update for an applicant.
// Only the fields present are applied; a nil field leaves the stored value
// untouched.
type UpdateStatusRequest struct {
	Regno      string  `json:"regno" validate:"required,regno"`
	Tech       *int    `json:"tech" validate:"omitempty,status_level"`
	Design     *int    `json:"design" validate:"omitempty,status_level"`
	Management *int    `json:"management" validate:"omitempty,status_level"`
	AdminNotes *string `json:"adminNotes" validate:"omitempty,max=2000"`
}

// HasChanges reports whether the request carries at least one field to apply
func (r *UpdateStatusRequest) HasChanges() bool {
	return r.Tech != nil || r.Design != nil || r.Management != nil || r.AdminNotes != nil
}

// ScheduleMeetingRequest represents the request structure for scheduling an interview
type ScheduleMeetingRequest struct {
	UserID            uint      `json:"user_id" validate:"required"`
	InterviewerEmails []string  `json:"interviewer_emails" validate:"required,min=1,dive,email"`
	ScheduledTime     time.Time `json:"scheduled_time" validate:"required"`
	EndTime           time.Time `json:"end_time" validate:"required,gtfield=ScheduledTime"`
	MeetLink          *string   `json:"meet_link" validate:"omitempty,url"`
}

// UpdateMeetingStatusRequest represents a meeting status transition
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled underway completed cancelled"`
}

// ExportRequest represents query parameters for the spreadsheet export
type ExportRequest struct {
	Domain string `json:"domain" form:"domain" validate:"omitempty,oneof=tech design management"`
}
