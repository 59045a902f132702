package services

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

// prospectService implements ProspectService
type prospectService struct {
	logger       *logger.Logger
	prospectRepo repositories.ProspectRepository
	userRepo     repositories.UserRepository
	cache        *CacheService
	validator    *models.ValidationService
}

// NewProspectService creates a new prospect service
func NewProspectService(
	logger *logger.Logger,
	prospectRepo repositories.ProspectRepository,
	userRepo repositories.UserRepository,
	cache *CacheService,
	validator *models.ValidationService,
) ProspectService {
	return &prospectService{
		logger:       logger,
		prospectRepo: prospectRepo,
		userRepo:     userRepo,
		cache:        cache,
		validator:    validator,
	}
}

// CreateProspect creates a new prospect
func (s *prospectService) CreateProspect(ctx context.Context, prospect *models.Prospect) error {
	if err := s.validator.ValidateStruct(prospect); err != nil {
		return err
	}

	if err := s.prospectRepo.Create(ctx, prospect); err != nil {
		s.logger.WithError(err).Error("Failed to create prospect")
		return err
	}

	s.invalidateBadgeCounts(ctx)
	s.logger.WithProspect(prospect.ID).Info("Prospect created")
	return nil
}

// GetProspect retrieves a prospect by ID
func (s *prospectService) GetProspect(ctx context.Context, id string) (*models.Prospect, error) {
	return s.prospectRepo.GetByID(ctx, id)
}

// ListProspects retrieves prospects matching a filter
func (s *prospectService) ListProspects(ctx context.Context, filter repositories.ProspectFilter) ([]*models.Prospect, error) {
	return s.prospectRepo.GetAll(ctx, filter)
}

// ListAssignedProspects retrieves the prospects assigned to one field caller
func (s *prospectService) ListAssignedProspects(ctx context.Context, userID string) ([]*models.Prospect, error) {
	return s.prospectRepo.GetByAssignee(ctx, userID)
}

// UpdateProspect updates an existing prospect
func (s *prospectService) UpdateProspect(ctx context.Context, prospect *models.Prospect) error {
	if err := s.validator.ValidateStruct(prospect); err != nil {
		return err
	}

	if err := s.prospectRepo.Update(ctx, prospect); err != nil {
		return err
	}

	s.invalidateBadgeCounts(ctx)
	return nil
}

// DeleteProspect soft deletes a prospect
func (s *prospectService) DeleteProspect(ctx context.Context, id string) error {
	if err := s.prospectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateBadgeCounts(ctx)
	return nil
}

// AssignProspect assigns a prospect to a field caller
func (s *prospectService) AssignProspect(ctx context.Context, prospectID, userID string) (*models.Prospect, error) {
	prospect, err := s.prospectRepo.GetByID(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	caller, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prospect.AssignedToID = &caller.ID
	if err := s.prospectRepo.Update(ctx, prospect); err != nil {
		return nil, err
	}

	s.logger.WithProspect(prospectID).WithField("assignee_id", userID).Info("Prospect assigned")
	return prospect, nil
}

// BadgeCounts returns aggregate prospect counts per badge status, served
// from cache when possible
func (s *prospectService) BadgeCounts(ctx context.Context) ([]models.BadgeCount, error) {
	if s.cache.Enabled() {
		var cached []models.BadgeCount
		if err := s.cache.Get(ctx, KeyBadgeCounts, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := s.prospectRepo.CountByBadgeStatus(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, KeyBadgeCounts, counts, s.cache.BadgeCountTTL()); err != nil {
			s.logger.WithError(err).Warn("Failed to cache badge counts")
		}
	}

	return counts, nil
}

// invalidateBadgeCounts drops the cached aggregate after a roster change.
// Cache failures are logged, never surfaced: the aggregate will simply be
// recomputed on the next read.
func (s *prospectService) invalidateBadgeCounts(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Delete(ctx, KeyBadgeCounts); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate badge count cache")
	}
}
