package services

import (
	"context"
	"errors"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

var ErrWeakPassword = errors.New("password must be at least 8 characters")

// userManagementService implements UserManagementService
type userManagementService struct {
	logger    *logger.Logger
	userRepo  repositories.UserRepository
	authSvc   AuthenticationService
	validator *models.ValidationService
}

// NewUserManagementService creates a new user management service
func NewUserManagementService(
	logger *logger.Logger,
	userRepo repositories.UserRepository,
	authSvc AuthenticationService,
	validator *models.ValidationService,
) UserManagementService {
	return &userManagementService{
		logger:    logger,
		userRepo:  userRepo,
		authSvc:   authSvc,
		validator: validator,
	}
}

// CreateUser creates a new user with a hashed password
func (s *userManagementService) CreateUser(ctx context.Context, user *models.User, password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	if err := s.validator.ValidateStruct(user); err != nil {
		return err
	}

	hash, err := s.authSvc.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.IsActive = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.WithError(err).Error("Failed to create user")
		return err
	}

	s.logger.WithUser(user.ID).WithField("role", user.Role).Info("User created")
	return nil
}

// GetUser retrieves a user by ID
func (s *userManagementService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all users
func (s *userManagementService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetCallers retrieves active field callers available for assignment
func (s *userManagementService) GetCallers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetCallers(ctx)
}

// UpdateUser updates an existing user
func (s *userManagementService) UpdateUser(ctx context.Context, user *models.User) error {
	if err := s.validator.ValidateStruct(user); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

// ChangePassword replaces a user's password
func (s *userManagementService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := s.authSvc.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.WithUser(userID).Info("Password changed")
	return nil
}

// DeactivateUser deactivates a user without deleting their records
func (s *userManagementService) DeactivateUser(ctx context.Context, id string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}

// DeleteUser soft deletes a user
func (s *userManagementService) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
