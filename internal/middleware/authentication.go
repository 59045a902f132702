package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

// UserContextKey is the context key for the authenticated user
const UserContextKey ContextKey = "user"

// AuthenticationMiddleware provides authentication middleware
type AuthenticationMiddleware struct {
	logger   *logger.Logger
	authSvc  services.AuthenticationService
	authzSvc services.AuthorizationService
}

// NewAuthenticationMiddleware creates a new authentication middleware
func NewAuthenticationMiddleware(
	logger *logger.Logger,
	authSvc services.AuthenticationService,
	authzSvc services.AuthorizationService,
) *AuthenticationMiddleware {
	return &AuthenticationMiddleware{
		logger:   logger,
		authSvc:  authSvc,
		authzSvc: authzSvc,
	}
}

// RequireJWT middleware that requires JWT authentication
func (m *AuthenticationMiddleware) RequireJWT() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				http.Error(w, "Bearer token required", http.StatusUnauthorized)
				return
			}

			token := authHeader[len(bearerPrefix):]
			user, err := m.authSvc.ValidateJWT(ctx, token)
			if err != nil {
				m.logger.WithError(err).Warn("JWT validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, UserContextKey, user)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole middleware that requires a specific role
func (m *AuthenticationMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if user.Role != role {
				m.authzSvc.LogSecurityViolation(r.Context(), user, "role_access_denied", role)
				http.Error(w, "Insufficient privileges", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext extracts the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
