package repositories

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// prospectRepository implements ProspectRepository
type prospectRepository struct {
	db *database.Connection
}

// NewProspectRepository creates a new prospect repository
func NewProspectRepository(db *database.Connection) ProspectRepository {
	return &prospectRepository{db: db}
}

// Create creates a new prospect
func (r *prospectRepository) Create(ctx context.Context, prospect *models.Prospect) error {
	return r.db.WithContext(ctx).Create(prospect).Error
}

// GetByID retrieves a prospect by ID
func (r *prospectRepository) GetByID(ctx context.Context, id string) (*models.Prospect, error) {
	var prospect models.Prospect
	err := r.db.WithContext(ctx).Preload("AssignedTo").First(&prospect, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &prospect, nil
}

// GetAll retrieves prospects matching a filter
func (r *prospectRepository) GetAll(ctx context.Context, filter ProspectFilter) ([]*models.Prospect, error) {
	query := r.db.WithContext(ctx).Preload("AssignedTo")

	if filter.BadgeStatus != "" {
		query = query.Where("badge_status = ?", filter.BadgeStatus)
	}
	if filter.AssignedToID != "" {
		query = query.Where("assigned_to_id = ?", filter.AssignedToID)
	}
	if filter.Locality != "" {
		query = query.Where("locality = ?", filter.Locality)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name ILIKE ? OR mobile LIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var prospects []*models.Prospect
	err := query.Order("full_name").Find(&prospects).Error
	return prospects, err
}

// GetByAssignee retrieves prospects assigned to a field caller
func (r *prospectRepository) GetByAssignee(ctx context.Context, userID string) ([]*models.Prospect, error) {
	var prospects []*models.Prospect
	err := r.db.WithContext(ctx).
		Where("assigned_to_id = ?", userID).
		Order("full_name").Find(&prospects).Error
	return prospects, err
}

// Update updates an existing prospect
func (r *prospectRepository) Update(ctx context.Context, prospect *models.Prospect) error {
	return r.db.WithContext(ctx).Save(prospect).Error
}

// Delete soft deletes a prospect
func (r *prospectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Prospect{}, "id = ?", id).Error
}

// CountByBadgeStatus aggregates prospect counts per badge status
func (r *prospectRepository) CountByBadgeStatus(ctx context.Context) ([]models.BadgeCount, error) {
	var counts []models.BadgeCount
	err := r.db.WithContext(ctx).
		Model(&models.Prospect{}).
		Select("badge_status, count(*) as count").
		Where("badge_status <> ''").
		Group("badge_status").
		Scan(&counts).Error
	return counts, err
}
