package database

import (
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// Migrator handles database migrations
type Migrator struct {
	db *Connection
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *Connection) *Migrator {
	return &Migrator{db: db}
}

// Up runs all pending migrations
func (m *Migrator) Up() error {
	return m.db.AutoMigrate(
		&models.User{},
		&models.Prospect{},
		&models.CallLog{},
		&models.ImportBatch{},
	)
}

// Down rolls back all migrations (for testing purposes)
func (m *Migrator) Down() error {
	return m.db.Migrator().DropTable(
		&models.ImportBatch{},
		&models.CallLog{},
		&models.Prospect{},
		&models.User{},
	)
}
