package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/repositories"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// ProspectHandler handles prospect roster endpoints
type ProspectHandler struct {
	logger      *logger.Logger
	prospectSvc services.ProspectService
	exportSvc   services.ExportService
	authzSvc    services.AuthorizationService
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(
	logger *logger.Logger,
	prospectSvc services.ProspectService,
	exportSvc services.ExportService,
	authzSvc services.AuthorizationService,
) *ProspectHandler {
	return &ProspectHandler{
		logger:      logger,
		prospectSvc: prospectSvc,
		exportSvc:   exportSvc,
		authzSvc:    authzSvc,
	}
}

// RegisterRoutes registers prospect routes
func (h *ProspectHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/prospects", h.CreateProspect).Methods("POST")
	router.HandleFunc("/prospects", h.ListProspects).Methods("GET")
	router.HandleFunc("/prospects/export", h.ExportProspects).Methods("GET")
	router.HandleFunc("/prospects/{id}", h.GetProspect).Methods("GET")
	router.HandleFunc("/prospects/{id}", h.UpdateProspect).Methods("PUT")
	router.HandleFunc("/prospects/{id}", h.DeleteProspect).Methods("DELETE")
	router.HandleFunc("/prospects/{id}/assign", h.AssignProspect).Methods("PUT")
	router.HandleFunc("/badge-counts", h.GetBadgeCounts).Methods("GET")
}

// CreateProspect creates a single prospect (admin only)
func (h *ProspectHandler) CreateProspect(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(r.Context(), user, "unauthorized_prospect_create", "")
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var prospect models.Prospect
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.prospectSvc.CreateProspect(r.Context(), &prospect); err != nil {
		h.logger.WithError(err).Error("Failed to create prospect")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to create prospect", err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, prospect)
}

// ListProspects lists prospects. Admins see the full roster with filters;
// field callers only what is assigned to them.
func (h *ProspectHandler) ListProspects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if user == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	if !user.IsAdmin() {
		prospects, err := h.prospectSvc.ListAssignedProspects(ctx, user.ID)
		if err != nil {
			h.logger.WithError(err).Error("Failed to list assigned prospects")
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to list prospects", err)
			return
		}
		writeJSONResponse(w, http.StatusOK, prospects)
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))
	filter := repositories.ProspectFilter{
		BadgeStatus:  query.Get("badge_status"),
		AssignedToID: query.Get("assigned_to"),
		Locality:     query.Get("locality"),
		Search:       query.Get("search"),
		Limit:        limit,
		Offset:       offset,
	}

	prospects, err := h.prospectSvc.ListProspects(ctx, filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list prospects")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list prospects", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prospects)
}

// GetProspect retrieves one prospect
func (h *ProspectHandler) GetProspect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	prospect, err := h.prospectSvc.GetProspect(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Prospect not found", err)
		return
	}

	if !h.authzSvc.CanViewProspect(user, prospect) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_prospect_access", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	writeJSONResponse(w, http.StatusOK, prospect)
}

// UpdateProspect updates a prospect (admin only)
func (h *ProspectHandler) UpdateProspect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_prospect_update", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var prospect models.Prospect
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	prospect.ID = id

	if err := h.prospectSvc.UpdateProspect(ctx, &prospect); err != nil {
		h.logger.WithError(err).Error("Failed to update prospect")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to update prospect", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prospect)
}

// DeleteProspect deletes a prospect (admin only)
func (h *ProspectHandler) DeleteProspect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_prospect_delete", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	if err := h.prospectSvc.DeleteProspect(ctx, id); err != nil {
		h.logger.WithError(err).Error("Failed to delete prospect")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete prospect", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AssignRequest is the assignment request body
type AssignRequest struct {
	UserID string `json:"user_id"`
}

// AssignProspect assigns a prospect to a field caller (admin only)
func (h *ProspectHandler) AssignProspect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_prospect_assign", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	prospect, err := h.prospectSvc.AssignProspect(ctx, id, req.UserID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to assign prospect")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to assign prospect", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, prospect)
}

// GetBadgeCounts returns aggregate prospect counts per badge status
func (h *ProspectHandler) GetBadgeCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.prospectSvc.BadgeCounts(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get badge counts")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to get badge counts", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, counts)
}

// ExportProspects streams the roster as an xlsx workbook (admin only)
func (h *ProspectHandler) ExportProspects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_prospect_export", "")
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	workbook, err := h.exportSvc.BuildWorkbook(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build export workbook")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to export prospects", err)
		return
	}

	fileName := "prospects-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if err := workbook.Write(w); err != nil {
		h.logger.WithError(err).Error("Failed to stream export workbook")
	}
}
