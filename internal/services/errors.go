package services

import "errors"

// Service-level sentinel errors. Handlers map these to HTTP status codes
// with errors.Is, so wrapped variants still match.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("resource conflict")

	ErrUserNotFound        = errors.New("user not found")
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidDomain       = errors.New("invalid domain")
	ErrInvalidStatusChange = errors.New("invalid status change")
)
