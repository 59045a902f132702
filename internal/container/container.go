package container

import (
	"database/sql"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/handlers"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/server"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides dependency injection configuration
var Module = fx.Options(
	// Configuration
	fx.Provide(config.LoadConfig),

	// Logging
	fx.Provide(logger.NewLogger),

	// Database
	fx.Provide(database.NewConnection),
	fx.Provide(func(conn *database.Connection) *gorm.DB {
		return conn.DB
	}),
	fx.Provide(func(conn *database.Connection) (*sql.DB, error) {
		return conn.DB.DB()
	}),
	fx.Provide(database.NewMigrator),
	fx.Provide(database.NewRedisClient),

	// Repositories
	fx.Provide(repositories.NewUserRepository),
	fx.Provide(repositories.NewProspectRepository),
	fx.Provide(repositories.NewCallLogRepository),
	fx.Provide(repositories.NewImportBatchRepository),

	// Services
	fx.Provide(services.NewAuthenticationService),
	fx.Provide(services.NewAuthorizationService),
	fx.Provide(services.NewUserManagementService),
	fx.Provide(services.NewCacheService),
	fx.Provide(services.NewProspectService),
	fx.Provide(services.NewCallLogService),
	fx.Provide(services.NewImportService),
	fx.Provide(services.NewExportService),
	fx.Provide(services.NewReportService),

	// Handlers
	fx.Provide(handlers.NewAuthHandler),
	fx.Provide(handlers.NewUserHandler),
	fx.Provide(handlers.NewProspectHandler),
	fx.Provide(handlers.NewImportHandler),
	fx.Provide(handlers.NewCallLogHandler),
	fx.Provide(handlers.NewHealthHandler),

	// Middleware
	fx.Provide(middleware.NewAuthenticationMiddleware),

	// Server
	fx.Provide(server.NewServer),

	// Models (for validation and serialization)
	fx.Provide(models.NewValidationService),

	// Invoke migrations on startup
	fx.Invoke(func(migrator *database.Migrator) error {
		return migrator.Up()
	}),
)
