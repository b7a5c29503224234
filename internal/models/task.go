package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnswerList is one question slot: an ordered sequence of free-text answers
// stored as a jsonb array.
type AnswerList = datatypes.JSONSlice[string]

// TaskRecord is implemented by all three task variants so the classifier and
// segregation logic can treat them uniformly.
type TaskRecord interface {
	OwnerID() uint
	Domain() Domain
	// ExplicitSubdomains returns the stored subdomain field, un-normalized.
	ExplicitSubdomains() []string
	// Answers returns the question slots keyed by slot name.
	Answers() map[string][]string
}

type TechTask struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Subdomain datatypes.JSONSlice[string] `json:"subdomain" gorm:"type:jsonb"`

	Question1 AnswerList `json:"question1" gorm:"type:jsonb"`
	Question2 AnswerList `json:"question2" gorm:"type:jsonb"`
	Question3 AnswerList `json:"question3" gorm:"type:jsonb"`
	Question4 AnswerList `json:"question4" gorm:"type:jsonb"`
	Question5 AnswerList `json:"question5" gorm:"type:jsonb"`

	IsDone bool `json:"is_done" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TechTask) TableName() string { return "tech_tasks" }

func (t *TechTask) OwnerID() uint                { return t.UserID }
func (t *TechTask) Domain() Domain               { return DomainTech }
func (t *TechTask) ExplicitSubdomains() []string { return t.Subdomain }

func (t *TechTask) Answers() map[string][]string {
	return map[string][]string{
		"question1": t.Question1,
		"question2": t.Question2,
		"question3": t.Question3,
		"question4": t.Question4,
		"question5": t.Question5,
	}
}

type DesignTask struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Subdomain datatypes.JSONSlice[string] `json:"subdomain" gorm:"type:jsonb"`

	Question1  AnswerList `json:"question1" gorm:"type:jsonb"`
	Question2  AnswerList `json:"question2" gorm:"type:jsonb"`
	Question3  AnswerList `json:"question3" gorm:"type:jsonb"`
	Question4  AnswerList `json:"question4" gorm:"type:jsonb"`
	Question5  AnswerList `json:"question5" gorm:"type:jsonb"`
	Question6  AnswerList `json:"question6" gorm:"type:jsonb"`
	Question7  AnswerList `json:"question7" gorm:"type:jsonb"`
	Question8  AnswerList `json:"question8" gorm:"type:jsonb"`
	Question9  AnswerList `json:"question9" gorm:"type:jsonb"`
	Question10 AnswerList `json:"question10" gorm:"type:jsonb"`
	Question11 AnswerList `json:"question11" gorm:"type:jsonb"`
	Question12 AnswerList `json:"question12" gorm:"type:jsonb"`
	Question13 AnswerList `json:"question13" gorm:"type:jsonb"`

	IsDone bool `json:"is_done" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DesignTask) TableName() string { return "design_tasks" }

func (t *DesignTask) OwnerID() uint                { return t.UserID }
func (t *DesignTask) Domain() Domain               { return DomainDesign }
func (t *DesignTask) ExplicitSubdomains() []string { return t.Subdomain }

func (t *DesignTask) Answers() map[string][]string {
	return map[string][]string{
		"question1":  t.Question1,
		"question2":  t.Question2,
		"question3":  t.Question3,
		"question4":  t.Question4,
		"question5":  t.Question5,
		"question6":  t.Question6,
		"question7":  t.Question7,
		"question8":  t.Question8,
		"question9":  t.Question9,
		"question10": t.Question10,
		"question11": t.Question11,
		"question12": t.Question12,
		"question13": t.Question13,
	}
}

type ManagementTask struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Subdomain datatypes.JSONSlice[string] `json:"subdomain" gorm:"type:jsonb"`

	Question1  AnswerList `json:"question1" gorm:"type:jsonb"`
	Question2  AnswerList `json:"question2" gorm:"type:jsonb"`
	Question3  AnswerList `json:"question3" gorm:"type:jsonb"`
	Question4  AnswerList `json:"question4" gorm:"type:jsonb"`
	Question5  AnswerList `json:"question5" gorm:"type:jsonb"`
	Question6  AnswerList `json:"question6" gorm:"type:jsonb"`
	Question7  AnswerList `json:"question7" gorm:"type:jsonb"`
	Question8  AnswerList `json:"question8" gorm:"type:jsonb"`
	Question9  AnswerList `json:"question9" gorm:"type:jsonb"`
	Question10 AnswerList `json:"question10" gorm:"type:jsonb"`
	Question11 AnswerList `json:"question11" gorm:"type:jsonb"`
	Question12 AnswerList `json:"question12" gorm:"type:jsonb"`
	Question13 AnswerList `json:"question13" gorm:"type:jsonb"`
	Question14 AnswerList `json:"question14" gorm:"type:jsonb"`
	Question15 AnswerList `json:"question15" gorm:"type:jsonb"`
	Question16 AnswerList `json:"question16" gorm:"type:jsonb"`
	Question17 AnswerList `json:"question17" gorm:"type:jsonb"`

	IsDone bool `json:"is_done" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ManagementTask) TableName() string { return "management_tasks" }

func (t *ManagementTask) OwnerID() uint                { return t.UserID }
func (t *ManagementTask) Domain() Domain               { return DomainManagement }
func (t *ManagementTask) ExplicitSubdomains() []string { return t.Subdomain }

func (t *ManagementTask) Answers() map[string][]string {
	return map[string][]string{
		"question1":  t.Question1,
		"question2":  t.Question2,
		"question3":  t.Question3,
		"question4":  t.Question4,
		"question5":  t.Question5,
		"question6":  t.Question6,
		"question7":  t.Question7,
		"question8":  t.Question8,
		"question9":  t.Question9,
		"question10": t.Question10,
		"question11": t.Question11,
		"question12": t.Question12,
		"question13": t.Question13,
		"question14": t.Question14,
		"question15": t.Question15,
		"question16": t.Question16,
		"question17": t.Question17,
	}
}
