package services

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// authorizationService implements AuthorizationService
type authorizationService struct {
	logger *logger.Logger
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(logger *logger.Logger) AuthorizationService {
	return &authorizationService{logger: logger}
}

// CanManageRoster reports whether a user may create, import, edit, assign or
// delete prospects. Only admins manage the roster.
func (s *authorizationService) CanManageRoster(user *models.User) bool {
	return user != nil && user.IsAdmin()
}

// CanViewProspect reports whether a user may see a prospect. Admins see the
// full roster; field callers see only prospects assigned to them.
func (s *authorizationService) CanViewProspect(user *models.User, prospect *models.Prospect) bool {
	if user == nil || prospect == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return prospect.AssignedToID != nil && *prospect.AssignedToID == user.ID
}

// CanEditCallLog reports whether a user may modify a call log. Admins may
// edit any log; callers only their own.
func (s *authorizationService) CanEditCallLog(user *models.User, log *models.CallLog) bool {
	if user == nil || log == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return log.CallerID == user.ID
}

// LogSecurityViolation records an access-control violation
func (s *authorizationService) LogSecurityViolation(ctx context.Context, user *models.User, violationType, resource string) {
	entry := s.logger.WithField("violation_type", violationType).
		WithField("resource", resource)
	if user != nil {
		entry = entry.WithField("user_id", user.ID).WithField("role", user.Role)
	}
	entry.Warn("Security violation")
}
