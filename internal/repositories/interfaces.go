package repositories

import (
	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// UserFilters narrows and paginates applicant listings. Listings are always
// ordered by creation time descending.
type UserFilters struct {
	Domain *models.Domain `json:"domain"` // nil = all domains
	Query  string         `json:"query"`  // matches username, email or regno
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type DomainCounts struct {
	Tech       int64 `json:"tech"`
	Design     int64 `json:"design"`
	Management int64 `json:"management"`
}

// LevelBreakdown counts users of one domain per progress level.
// Keys: -1 rejected, 0 registered, 1..3 interview rounds.
type LevelBreakdown map[int]int64

type MeetingCounts struct {
	Scheduled int64 `json:"scheduled"`
	Underway  int64 `json:"underway"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
