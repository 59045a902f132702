package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/handlers"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
)

// Server represents the HTTP server
type Server struct {
	config          *config.Config
	logger          *logger.Logger
	router          *mux.Router
	httpServer      *http.Server
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	prospectHandler *handlers.ProspectHandler
	importHandler   *handlers.ImportHandler
	callLogHandler  *handlers.CallLogHandler
	healthHandler   *handlers.HealthHandler
	authMiddleware  *middleware.AuthenticationMiddleware
}

// NewServer creates a new HTTP server
func NewServer(
	config *config.Config,
	logger *logger.Logger,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	prospectHandler *handlers.ProspectHandler,
	importHandler *handlers.ImportHandler,
	callLogHandler *handlers.CallLogHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthenticationMiddleware,
) *Server {
	router := mux.NewRouter()

	server := &Server{
		config:          config,
		logger:          logger,
		router:          router,
		authHandler:     authHandler,
		userHandler:     userHandler,
		prospectHandler: prospectHandler,
		importHandler:   importHandler,
		callLogHandler:  callLogHandler,
		healthHandler:   healthHandler,
		authMiddleware:  authMiddleware,
	}

	server.setupRoutes()
	server.setupHTTPServer()

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.healthHandler.RegisterRoutes(s.router)

	// Metrics endpoint (no auth required for monitoring systems)
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Login (no auth required)
	s.authHandler.RegisterRoutes(s.router)

	// Everything under /api requires a valid JWT
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware.RequireJWT())

	s.userHandler.RegisterRoutes(api)
	s.prospectHandler.RegisterRoutes(api)
	s.callLogHandler.RegisterRoutes(api)

	// The import surface is admin-only end to end, so it sits behind the
	// role middleware in addition to the handler-level roster checks.
	adminAPI := s.router.PathPrefix("/api").Subrouter()
	adminAPI.Use(s.authMiddleware.RequireJWT())
	adminAPI.Use(s.authMiddleware.RequireRole(models.RoleAdmin))
	s.importHandler.RegisterRoutes(adminAPI)

	s.router.Use(s.loggingMiddleware)
}

// setupHTTPServer configures the HTTP server
func (s *Server) setupHTTPServer() {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.config.Server.IdleTimeout) * time.Second,
	}
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.config.Server.Port).Info("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.WithError(err).Error("HTTP server error")
		return err
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	s.logger.Info("Shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		s.logger.WithFields(map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      wrapped.statusCode,
			"duration_ms": duration.Milliseconds(),
			"remote_addr": r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		}).Info("HTTP request")
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
