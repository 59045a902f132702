package repositories

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// callLogRepository implements CallLogRepository
type callLogRepository struct {
	db *database.Connection
}

// NewCallLogRepository creates a new call log repository
func NewCallLogRepository(db *database.Connection) CallLogRepository {
	return &callLogRepository{db: db}
}

// Create creates a new call log
func (r *callLogRepository) Create(ctx context.Context, log *models.CallLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByID retrieves a call log by ID
func (r *callLogRepository) GetByID(ctx context.Context, id string) (*models.CallLog, error) {
	var log models.CallLog
	err := r.db.WithContext(ctx).
		Preload("Prospect").Preload("Caller").
		First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByProspect retrieves all call logs for a prospect, newest first
func (r *callLogRepository) GetByProspect(ctx context.Context, prospectID string) ([]*models.CallLog, error) {
	var logs []*models.CallLog
	err := r.db.WithContext(ctx).
		Preload("Caller").
		Where("prospect_id = ?", prospectID).
		Order("called_at DESC").Find(&logs).Error
	return logs, err
}

// GetByCaller retrieves call logs filed by one caller, newest first
func (r *callLogRepository) GetByCaller(ctx context.Context, callerID string, limit, offset int) ([]*models.CallLog, error) {
	query := r.db.WithContext(ctx).
		Preload("Prospect").
		Where("caller_id = ?", callerID).
		Order("called_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logs []*models.CallLog
	err := query.Find(&logs).Error
	return logs, err
}

// Update updates an existing call log
func (r *callLogRepository) Update(ctx context.Context, log *models.CallLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

// Delete soft deletes a call log
func (r *callLogRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CallLog{}, "id = ?", id).Error
}
