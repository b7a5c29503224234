package models

import (
	"time"

	"gorm.io/datatypes"
)

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingUnderway  MeetingStatus = "underway"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingScheduled, MeetingUnderway, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

// Meeting is a scheduled interview for one applicant.
type Meeting struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	InterviewerEmails datatypes.JSONSlice[string] `json:"interviewer_emails" gorm:"type:jsonb"`

	ScheduledTime time.Time `json:"scheduled_time" gorm:"not null"`
	EndTime       time.Time `json:"end_time" gorm:"not null"`

	MeetLink        *string `json:"meet_link" gorm:"size:500"`
	CalendarEventID *string `json:"calendar_event_id" gorm:"size:255"`

	Status MeetingStatus `json:"status" gorm:"not null;default:scheduled;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}
