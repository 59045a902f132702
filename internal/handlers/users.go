package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// UserHandler handles user administration endpoints (admin only)
type UserHandler struct {
	logger      *logger.Logger
	userMgmtSvc services.UserManagementService
	authzSvc    services.AuthorizationService
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	logger *logger.Logger,
	userMgmtSvc services.UserManagementService,
	authzSvc services.AuthorizationService,
) *UserHandler {
	return &UserHandler{
		logger:      logger,
		userMgmtSvc: userMgmtSvc,
		authzSvc:    authzSvc,
	}
}

// RegisterRoutes registers user administration routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/users/callers", h.ListCallers).Methods("GET")
	router.HandleFunc("/users/{id}", h.GetUser).Methods("GET")
	router.HandleFunc("/users/{id}", h.UpdateUser).Methods("PUT")
	router.HandleFunc("/users/{id}", h.DeactivateUser).Methods("DELETE")
	router.HandleFunc("/users/{id}/password", h.ChangePassword).Methods("PUT")
}

// CreateUserRequest is the user creation request body
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser creates a new admin or field caller account
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_user_create", "")
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
	}

	if err := h.userMgmtSvc.CreateUser(ctx, user, req.Password); err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Password too weak", err)
			return
		}
		h.logger.WithError(err).Error("Failed to create user")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to create user", err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, user)
}

// ListUsers lists all accounts
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_user_list", "")
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	users, err := h.userMgmtSvc.GetAllUsers(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, users)
}

// ListCallers lists active field caller accounts, used to populate
// assignment dropdowns.
func (h *UserHandler) ListCallers(w http.ResponseWriter, r *http.Request) {
	callers, err := h.userMgmtSvc.GetCallers(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list callers")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list callers", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, callers)
}

// GetUser retrieves one account
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) && (actor == nil || actor.ID != id) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_user_access", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	user, err := h.userMgmtSvc.GetUser(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "User not found", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, user)
}

// UpdateUser updates an account's profile fields
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_user_update", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	user.ID = id

	if err := h.userMgmtSvc.UpdateUser(ctx, &user); err != nil {
		h.logger.WithError(err).Error("Failed to update user")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to update user", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, user)
}

// ChangePasswordRequest is the password change request body
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangePassword sets a new password for an account
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) && (actor == nil || actor.ID != id) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_password_change", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.userMgmtSvc.ChangePassword(ctx, id, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Password too weak", err)
			return
		}
		h.logger.WithError(err).Error("Failed to change password")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to change password", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeactivateUser disables an account without destroying its call history
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	actor := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(actor) {
		h.authzSvc.LogSecurityViolation(ctx, actor, "unauthorized_user_deactivate", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	if err := h.userMgmtSvc.DeactivateUser(ctx, id); err != nil {
		h.logger.WithError(err).Error("Failed to deactivate user")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to deactivate user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
