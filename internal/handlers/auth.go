package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// AuthHandler handles login and session endpoints
type AuthHandler struct {
	logger  *logger.Logger
	authSvc services.AuthenticationService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *logger.Logger, authSvc services.AuthenticationService) *AuthHandler {
	return &AuthHandler{logger: logger, authSvc: authSvc}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the login response body
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login resolves an email/password pair to a JWT
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	user, err := h.authSvc.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeErrorResponse(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		h.logger.WithError(err).Error("Login failed")
		writeErrorResponse(w, http.StatusInternalServerError, "Login failed", err)
		return
	}

	token, err := h.authSvc.GenerateJWT(ctx, user)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate token")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
