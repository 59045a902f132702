package services

import (
	"context"
	"time"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

// callLogService implements CallLogService
type callLogService struct {
	logger       *logger.Logger
	callLogRepo  repositories.CallLogRepository
	prospectRepo repositories.ProspectRepository
	validator    *models.ValidationService
}

// NewCallLogService creates a new call log service
func NewCallLogService(
	logger *logger.Logger,
	callLogRepo repositories.CallLogRepository,
	prospectRepo repositories.ProspectRepository,
	validator *models.ValidationService,
) CallLogService {
	return &callLogService{
		logger:       logger,
		callLogRepo:  callLogRepo,
		prospectRepo: prospectRepo,
		validator:    validator,
	}
}

// CreateCallLog records one outreach outcome against a prospect
func (s *callLogService) CreateCallLog(ctx context.Context, log *models.CallLog) error {
	if log.CalledAt.IsZero() {
		log.CalledAt = time.Now()
	}

	if err := s.validator.ValidateStruct(log); err != nil {
		return err
	}

	// The prospect must exist; a dangling call log is useless
	if _, err := s.prospectRepo.GetByID(ctx, log.ProspectID); err != nil {
		return err
	}

	if err := s.callLogRepo.Create(ctx, log); err != nil {
		s.logger.WithError(err).Error("Failed to create call log")
		return err
	}

	s.logger.WithCallLog(log.ID).WithField("prospect_id", log.ProspectID).Info("Call log created")
	return nil
}

// GetCallLog retrieves a call log by ID
func (s *callLogService) GetCallLog(ctx context.Context, id string) (*models.CallLog, error) {
	return s.callLogRepo.GetByID(ctx, id)
}

// GetProspectCallLogs retrieves all call logs for a prospect
func (s *callLogService) GetProspectCallLogs(ctx context.Context, prospectID string) ([]*models.CallLog, error) {
	return s.callLogRepo.GetByProspect(ctx, prospectID)
}

// GetCallerCallLogs retrieves call logs filed by one caller
func (s *callLogService) GetCallerCallLogs(ctx context.Context, callerID string, limit, offset int) ([]*models.CallLog, error) {
	return s.callLogRepo.GetByCaller(ctx, callerID, limit, offset)
}

// UpdateCallLog updates an existing call log
func (s *callLogService) UpdateCallLog(ctx context.Context, log *models.CallLog) error {
	if err := s.validator.ValidateStruct(log); err != nil {
		return err
	}
	return s.callLogRepo.Update(ctx, log)
}

// DeleteCallLog soft deletes a call log
func (s *callLogService) DeleteCallLog(ctx context.Context, id string) error {
	return s.callLogRepo.Delete(ctx, id)
}
