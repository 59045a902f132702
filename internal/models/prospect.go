package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge statuses used for aggregate counting
const (
	BadgeStatusOpen        = "Open"
	BadgeStatusPermanent   = "Permanent"
	BadgeStatusElderly     = "Elderly"
	BadgeStatusSangat      = "Sangat"
	BadgeStatusNewProspect = "New Prospect"
)

// BadgeStatuses lists all badge statuses in display order
var BadgeStatuses = []string{
	BadgeStatusOpen,
	BadgeStatusPermanent,
	BadgeStatusElderly,
	BadgeStatusSangat,
	BadgeStatusNewProspect,
}

// Prospect represents a person tracked for outreach and follow-up.
// Most columns are free-text strings because prospects are bulk-imported
// from manually maintained spreadsheets; values are stored as entered.
type Prospect struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName         string         `json:"full_name" gorm:"not null;index" validate:"required,min=2,max=200"`
	Address          string         `json:"address,omitempty"`
	Mobile           string         `json:"mobile" gorm:"not null;index" validate:"required,min=4,max=20"`
	BloodGroup       string         `json:"bloodgroup,omitempty"`
	AadharNumber     string         `json:"aadhar_number,omitempty"`
	DOB              string         `json:"dob,omitempty"`
	Age              string         `json:"age,omitempty"`
	GuardianName     string         `json:"guardian_name,omitempty"`
	BadgeID          string         `json:"badge_id,omitempty" gorm:"index"`
	Gender           string         `json:"gender,omitempty"`
	BadgeStatus      string         `json:"badge_status,omitempty" gorm:"index" validate:"omitempty,oneof='Open' 'Permanent' 'Elderly' 'Sangat' 'New Prospect'"`
	EmergencyContact string         `json:"emergency_contact,omitempty"`
	Department       string         `json:"department,omitempty"`
	MaritalStatus    string         `json:"marital_status,omitempty"`
	Locality         string         `json:"locality,omitempty"`
	AssignedToID     *string        `json:"assigned_to_id,omitempty" gorm:"type:uuid;index"`
	InitiationDate   string         `json:"initiation_date,omitempty"`
	InitiatedBy      string         `json:"initiated_by,omitempty"`
	InitiationPlace  string         `json:"initiation_place,omitempty"`
	IsInitiated      string         `json:"is_initiated,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	AssignedTo *User     `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	CallLogs   []CallLog `json:"call_logs,omitempty" gorm:"foreignKey:ProspectID"`
}

// TableName returns the table name for Prospect
func (Prospect) TableName() string {
	return "prospects"
}

// BadgeCount represents the number of prospects carrying one badge status
type BadgeCount struct {
	BadgeStatus string `json:"badge_status"`
	Count       int64  `json:"count"`
}
