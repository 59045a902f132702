package repositories

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// importBatchRepository implements ImportBatchRepository
type importBatchRepository struct {
	db *database.Connection
}

// NewImportBatchRepository creates a new import batch repository
func NewImportBatchRepository(db *database.Connection) ImportBatchRepository {
	return &importBatchRepository{db: db}
}

// Create records an accepted import
func (r *importBatchRepository) Create(ctx context.Context, batch *models.ImportBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

// GetRecent retrieves the most recent import batches
func (r *importBatchRepository) GetRecent(ctx context.Context, limit int) ([]*models.ImportBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	var batches []*models.ImportBatch
	err := r.db.WithContext(ctx).
		Preload("Importer").
		Order("created_at DESC").Limit(limit).Find(&batches).Error
	return batches, err
}
