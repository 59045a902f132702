package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

func newProspectService(prospectRepo *MockProspectRepository, userRepo *MockUserRepository) ProspectService {
	return NewProspectService(
		createTestLogger(),
		prospectRepo,
		userRepo,
		NewCacheService(nil, createTestConfig()),
		models.NewValidationService(),
	)
}

func TestCreateProspect(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	svc := newProspectService(prospectRepo, &MockUserRepository{})

	prospect := &models.Prospect{
		FullName:    "Ravi Kumar",
		Mobile:      "9876543210",
		BadgeStatus: models.BadgeStatusNewProspect,
	}
	prospectRepo.On("Create", ctx, prospect).Return(nil)

	require.NoError(t, svc.CreateProspect(ctx, prospect))
	prospectRepo.AssertExpectations(t)
}

func TestCreateProspect_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	svc := newProspectService(prospectRepo, &MockUserRepository{})

	t.Run("missing mobile", func(t *testing.T) {
		err := svc.CreateProspect(ctx, &models.Prospect{FullName: "Ravi Kumar"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mobile")
	})

	t.Run("unknown badge status", func(t *testing.T) {
		err := svc.CreateProspect(ctx, &models.Prospect{
			FullName:    "Ravi Kumar",
			Mobile:      "9876543210",
			BadgeStatus: "VIP",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "badge_status")
	})

	prospectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssignProspect(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	userRepo := &MockUserRepository{}
	svc := newProspectService(prospectRepo, userRepo)

	prospect := &models.Prospect{ID: "p1", FullName: "Ravi", Mobile: "9876543210"}
	caller := &models.User{ID: "c1", Name: "Asha", Role: models.RoleUser, IsActive: true}

	prospectRepo.On("GetByID", ctx, "p1").Return(prospect, nil)
	userRepo.On("GetByID", ctx, "c1").Return(caller, nil)
	prospectRepo.On("Update", ctx, prospect).Return(nil)

	got, err := svc.AssignProspect(ctx, "p1", "c1")
	require.NoError(t, err)
	require.NotNil(t, got.AssignedToID)
	assert.Equal(t, "c1", *got.AssignedToID)
}

func TestListAssignedProspects(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	svc := newProspectService(prospectRepo, &MockUserRepository{})

	assigned := []*models.Prospect{{ID: "p1"}, {ID: "p2"}}
	prospectRepo.On("GetByAssignee", ctx, "c1").Return(assigned, nil)

	got, err := svc.ListAssignedProspects(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBadgeCounts_CacheDisabled(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	svc := newProspectService(prospectRepo, &MockUserRepository{})

	counts := []models.BadgeCount{
		{BadgeStatus: models.BadgeStatusOpen, Count: 3},
		{BadgeStatus: models.BadgeStatusSangat, Count: 7},
	}
	prospectRepo.On("CountByBadgeStatus", ctx).Return(counts, nil)

	got, err := svc.BadgeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, got)
}

func TestListProspects_PassesFilter(t *testing.T) {
	ctx := context.Background()
	prospectRepo := &MockProspectRepository{}
	svc := newProspectService(prospectRepo, &MockUserRepository{})

	filter := repositories.ProspectFilter{BadgeStatus: models.BadgeStatusOpen, Limit: 10}
	prospectRepo.On("GetAll", ctx, filter).Return([]*models.Prospect{}, nil)

	_, err := svc.ListProspects(ctx, filter)
	require.NoError(t, err)
	prospectRepo.AssertExpectations(t)
}
