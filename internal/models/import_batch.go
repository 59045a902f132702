package models

import (
	"time"
)

// ImportBatch is an audit record of one accepted spreadsheet import.
// The duplicate-upload guard itself is session-scoped and in-memory; this
// row only records what was imported and by whom.
type ImportBatch struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Fingerprint string    `json:"fingerprint" gorm:"type:varchar(64);not null;index" validate:"required"`
	FileName    string    `json:"file_name,omitempty"`
	RowCount    int       `json:"row_count" gorm:"not null"`
	Inserted    int       `json:"inserted" gorm:"not null"`
	ImportedBy  string    `json:"imported_by" gorm:"type:uuid;not null;index" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Importer *User `json:"importer,omitempty" gorm:"foreignKey:ImportedBy"`
}

// TableName returns the table name for ImportBatch
func (ImportBatch) TableName() string {
	return "import_batches"
}
