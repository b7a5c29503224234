package models

import (
	"time"

	"gorm.io/datatypes"
)

// Status levels stored per domain on a user. The update operation accepts
// any integer; the promotion/rejection transition rules live in the
// business validator and are enforced by callers, not by storage.
const (
	LevelRejected   = -1
	LevelRegistered = 0
	MaxRound        = 3
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null;size:100"`
	Email    string `json:"email" gorm:"index;size:255"`
	Regno    string `json:"regno" gorm:"uniqueIndex;size:20"`

	// Bcrypt hash, never serialized.
	PasswordHash string `json:"-" gorm:"column:password;size:255"`

	Verified bool `json:"verified" gorm:"not null;default:false"`

	// Per-domain interview progress: -1 rejected, 0 registered, 1..3 round reached.
	Tech       int `json:"tech" gorm:"not null;default:0"`
	Design     int `json:"design" gorm:"not null;default:0"`
	Management int `json:"management" gorm:"not null;default:0"`

	IsCore        bool    `json:"is_core" gorm:"not null;default:false"`
	Mobile        *string `json:"mobile" gorm:"size:20"`
	EmailPersonal *string `json:"email_personal" gorm:"size:255"`

	// Domain membership, subset of {tech, design, management}.
	Domains datatypes.JSONSlice[string] `json:"domain" gorm:"type:jsonb"`

	Admin         bool   `json:"admin" gorm:"not null;default:false"`
	IsProfileDone bool   `json:"is_profile_done" gorm:"not null;default:false"`
	AdminNotes    string `json:"admin_notes" gorm:"type:text;default:''"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// InDomain reports whether the user belongs to the given recruitment domain.
func (u *User) InDomain(d Domain) bool {
	for _, m := range u.Domains {
		if Domain(m) == d {
			return true
		}
	}
	return false
}
