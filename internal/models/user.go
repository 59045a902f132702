package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a system user: either an admin managing the full prospect
// roster or a field caller who only sees prospects assigned to them
type User struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string         `json:"name" gorm:"not null" validate:"required,min=2,max=100"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null" validate:"required,oneof=admin user"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
