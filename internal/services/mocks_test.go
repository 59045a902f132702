package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

// createTestLogger creates a logger for testing
func createTestLogger() *logger.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &logger.Logger{Logger: log}
}

// createTestConfig creates a config for testing with caching disabled
func createTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenTTL:    1,
			BcryptCost:  4,
			TokenIssuer: "test",
		},
		Import: config.ImportConfig{
			MaxRows: 1000,
		},
		Cache: config.CacheConfig{
			Enabled: false,
		},
	}
}

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetCallers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProspectRepository is a mock implementation of ProspectRepository for testing
type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) Create(ctx context.Context, prospect *models.Prospect) error {
	args := m.Called(ctx, prospect)
	return args.Error(0)
}

func (m *MockProspectRepository) GetByID(ctx context.Context, id string) (*models.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prospect), args.Error(1)
}

func (m *MockProspectRepository) GetAll(ctx context.Context, filter repositories.ProspectFilter) ([]*models.Prospect, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prospect), args.Error(1)
}

func (m *MockProspectRepository) GetByAssignee(ctx context.Context, userID string) ([]*models.Prospect, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prospect), args.Error(1)
}

func (m *MockProspectRepository) Update(ctx context.Context, prospect *models.Prospect) error {
	args := m.Called(ctx, prospect)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProspectRepository) CountByBadgeStatus(ctx context.Context) ([]models.BadgeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BadgeCount), args.Error(1)
}

// MockCallLogRepository is a mock implementation of CallLogRepository for testing
type MockCallLogRepository struct {
	mock.Mock
}

func (m *MockCallLogRepository) Create(ctx context.Context, log *models.CallLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockCallLogRepository) GetByID(ctx context.Context, id string) (*models.CallLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) GetByProspect(ctx context.Context, prospectID string) ([]*models.CallLog, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) GetByCaller(ctx context.Context, callerID string, limit, offset int) ([]*models.CallLog, error) {
	args := m.Called(ctx, callerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) Update(ctx context.Context, log *models.CallLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockCallLogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImportBatchRepository is a mock implementation of ImportBatchRepository for testing
type MockImportBatchRepository struct {
	mock.Mock
}

func (m *MockImportBatchRepository) Create(ctx context.Context, batch *models.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockImportBatchRepository) GetRecent(ctx context.Context, limit int) ([]*models.ImportBatch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ImportBatch), args.Error(1)
}
