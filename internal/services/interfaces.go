package services

import (
	"context"
	"io"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"

	"github.com/xuri/excelize/v2"
)

// AuthenticationService defines the interface for authentication operations
type AuthenticationService interface {
	ValidateCredentials(ctx context.Context, email, password string) (*models.User, error)
	GenerateJWT(ctx context.Context, user *models.User) (string, error)
	ValidateJWT(ctx context.Context, token string) (*models.User, error)
	HashPassword(password string) (string, error)
}

// AuthorizationService defines the interface for authorization decisions
type AuthorizationService interface {
	CanManageRoster(user *models.User) bool
	CanViewProspect(user *models.User, prospect *models.Prospect) bool
	CanEditCallLog(user *models.User, log *models.CallLog) bool
	LogSecurityViolation(ctx context.Context, user *models.User, violationType, resource string)
}

// UserManagementService defines the interface for user management operations
type UserManagementService interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetCallers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ChangePassword(ctx context.Context, userID, newPassword string) error
	DeactivateUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// ProspectService defines the interface for prospect roster operations
type ProspectService interface {
	CreateProspect(ctx context.Context, prospect *models.Prospect) error
	GetProspect(ctx context.Context, id string) (*models.Prospect, error)
	ListProspects(ctx context.Context, filter repositories.ProspectFilter) ([]*models.Prospect, error)
	ListAssignedProspects(ctx context.Context, userID string) ([]*models.Prospect, error)
	UpdateProspect(ctx context.Context, prospect *models.Prospect) error
	DeleteProspect(ctx context.Context, id string) error
	AssignProspect(ctx context.Context, prospectID, userID string) (*models.Prospect, error)
	BadgeCounts(ctx context.Context) ([]models.BadgeCount, error)
}

// CallLogService defines the interface for call log operations
type CallLogService interface {
	CreateCallLog(ctx context.Context, log *models.CallLog) error
	GetCallLog(ctx context.Context, id string) (*models.CallLog, error)
	GetProspectCallLogs(ctx context.Context, prospectID string) ([]*models.CallLog, error)
	GetCallerCallLogs(ctx context.Context, callerID string, limit, offset int) ([]*models.CallLog, error)
	UpdateCallLog(ctx context.Context, log *models.CallLog) error
	DeleteCallLog(ctx context.Context, id string) error
}

// ImportService defines the interface for the spreadsheet import pipeline
type ImportService interface {
	ImportSpreadsheet(ctx context.Context, file io.Reader, fileName string, importedBy *models.User) (*ImportResult, error)
}

// ExportService defines the interface for the spreadsheet export direction
type ExportService interface {
	BuildWorkbook(ctx context.Context) (*excelize.File, error)
}

// ReportService defines the interface for call log PDF report generation
type ReportService interface {
	CallLogReport(ctx context.Context, callLogID string) ([]byte, error)
}
