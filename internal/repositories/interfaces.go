package repositories

import (
	"context"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetCallers(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// ProspectFilter narrows prospect listings
type ProspectFilter struct {
	BadgeStatus  string
	AssignedToID string
	Locality     string
	Search       string
	Limit        int
	Offset       int
}

// ProspectRepository defines the interface for prospect data operations
type ProspectRepository interface {
	Create(ctx context.Context, prospect *models.Prospect) error
	GetByID(ctx context.Context, id string) (*models.Prospect, error)
	GetAll(ctx context.Context, filter ProspectFilter) ([]*models.Prospect, error)
	GetByAssignee(ctx context.Context, userID string) ([]*models.Prospect, error)
	Update(ctx context.Context, prospect *models.Prospect) error
	Delete(ctx context.Context, id string) error
	CountByBadgeStatus(ctx context.Context) ([]models.BadgeCount, error)
}

// CallLogRepository defines the interface for call log data operations
type CallLogRepository interface {
	Create(ctx context.Context, log *models.CallLog) error
	GetByID(ctx context.Context, id string) (*models.CallLog, error)
	GetByProspect(ctx context.Context, prospectID string) ([]*models.CallLog, error)
	GetByCaller(ctx context.Context, callerID string, limit, offset int) ([]*models.CallLog, error)
	Update(ctx context.Context, log *models.CallLog) error
	Delete(ctx context.Context, id string) error
}

// ImportBatchRepository defines the interface for import audit records
type ImportBatchRepository interface {
	Create(ctx context.Context, batch *models.ImportBatch) error
	GetRecent(ctx context.Context, limit int) ([]*models.ImportBatch, error)
}
