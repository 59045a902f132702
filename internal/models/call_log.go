package models

import (
	"time"

	"gorm.io/gorm"
)

// Call outcomes recorded by field callers
const (
	CallOutcomeConnected     = "connected"
	CallOutcomeNoAnswer      = "no_answer"
	CallOutcomeWrongNumber   = "wrong_number"
	CallOutcomeSwitchedOff   = "switched_off"
	CallOutcomeNotInterested = "not_interested"
)

// CallLog represents one field caller's outcome record for one outreach
// attempt against a prospect
type CallLog struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProspectID     string         `json:"prospect_id" gorm:"type:uuid;not null;index" validate:"required"`
	CallerID       string         `json:"caller_id" gorm:"type:uuid;not null;index" validate:"required"`
	Outcome        string         `json:"outcome" gorm:"not null" validate:"required,oneof=connected no_answer wrong_number switched_off not_interested"`
	Response       string         `json:"response,omitempty"`
	Notes          string         `json:"notes,omitempty" gorm:"type:text"`
	WillAttend     bool           `json:"will_attend" gorm:"default:false"`
	FollowUpDate   *time.Time     `json:"follow_up_date,omitempty"`
	VisitRequested bool           `json:"visit_requested" gorm:"default:false"`
	VisitNotes     string         `json:"visit_notes,omitempty" gorm:"type:text"`
	CalledAt       time.Time      `json:"called_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Prospect *Prospect `json:"prospect,omitempty" gorm:"foreignKey:ProspectID"`
	Caller   *User     `json:"caller,omitempty" gorm:"foreignKey:CallerID"`
}

// TableName returns the table name for CallLog
func (CallLog) TableName() string {
	return "call_logs"
}
