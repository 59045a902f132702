package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthorized       = errors.New("unauthorized access")
)

// JWTClaims represents the JWT token claims
type JWTClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// authenticationService implements AuthenticationService
type authenticationService struct {
	logger     *logger.Logger
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	issuer     string
	bcryptCost int
}

// NewAuthenticationService creates a new authentication service
func NewAuthenticationService(
	logger *logger.Logger,
	cfg *config.Config,
	userRepo repositories.UserRepository,
) AuthenticationService {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authenticationService{
		logger:     logger,
		userRepo:   userRepo,
		jwtSecret:  []byte(cfg.Auth.JWTSecret),
		tokenTTL:   time.Duration(cfg.Auth.TokenTTL) * time.Hour,
		issuer:     cfg.Auth.TokenIssuer,
		bcryptCost: cost,
	}
}

// ValidateCredentials resolves an email/password pair to a user
func (s *authenticationService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.WithField("email", email).
			WithError(err).Warn("User not found during login")
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Invalid password during login")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GenerateJWT generates a JWT token for a user
func (s *authenticationService) GenerateJWT(ctx context.Context, user *models.User) (string, error) {
	s.logger.WithUser(user.ID).Info("Generating JWT token")

	claims := JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.WithUser(user.ID).WithError(err).Error("Failed to sign JWT token")
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns the user
func (s *authenticationService) ValidateJWT(ctx context.Context, tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		s.logger.WithError(err).Warn("Failed to parse JWT token")
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	// Confirm the user still exists and is active
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		s.logger.WithUser(claims.UserID).WithError(err).Warn("User not found for JWT token")
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// HashPassword hashes a password using bcrypt
func (s *authenticationService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
