package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/models"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// CallLogHandler handles call log endpoints
type CallLogHandler struct {
	logger      *logger.Logger
	callLogSvc  services.CallLogService
	prospectSvc services.ProspectService
	reportSvc   services.ReportService
	authzSvc    services.AuthorizationService
}

// NewCallLogHandler creates a new call log handler
func NewCallLogHandler(
	logger *logger.Logger,
	callLogSvc services.CallLogService,
	prospectSvc services.ProspectService,
	reportSvc services.ReportService,
	authzSvc services.AuthorizationService,
) *CallLogHandler {
	return &CallLogHandler{
		logger:      logger,
		callLogSvc:  callLogSvc,
		prospectSvc: prospectSvc,
		reportSvc:   reportSvc,
		authzSvc:    authzSvc,
	}
}

// RegisterRoutes registers call log routes
func (h *CallLogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/prospects/{id}/call-logs", h.CreateCallLog).Methods("POST")
	router.HandleFunc("/prospects/{id}/call-logs", h.ListProspectCallLogs).Methods("GET")
	router.HandleFunc("/call-logs/{id}", h.GetCallLog).Methods("GET")
	router.HandleFunc("/call-logs/{id}", h.UpdateCallLog).Methods("PUT")
	router.HandleFunc("/call-logs/{id}", h.DeleteCallLog).Methods("DELETE")
	router.HandleFunc("/call-logs/{id}/report", h.CallLogReport).Methods("GET")
}

// CreateCallLog records a call outcome against a prospect. The caller is
// always the authenticated user, and may only log calls for prospects
// visible to them.
func (h *CallLogHandler) CreateCallLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prospectID := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if user == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	prospect, err := h.prospectSvc.GetProspect(ctx, prospectID)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Prospect not found", err)
		return
	}
	if !h.authzSvc.CanViewProspect(user, prospect) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_create", prospectID)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var log models.CallLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	log.ProspectID = prospectID
	log.CallerID = user.ID

	if err := h.callLogSvc.CreateCallLog(ctx, &log); err != nil {
		h.logger.WithError(err).Error("Failed to create call log")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to create call log", err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, log)
}

// ListProspectCallLogs lists the call history of a prospect. The prospect
// itself must be visible to the requester.
func (h *CallLogHandler) ListProspectCallLogs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prospectID := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	prospect, err := h.prospectSvc.GetProspect(ctx, prospectID)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Prospect not found", err)
		return
	}
	if !h.authzSvc.CanViewProspect(user, prospect) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_list", prospectID)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	logs, err := h.callLogSvc.GetProspectCallLogs(ctx, prospectID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list call logs")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list call logs", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, logs)
}

// GetCallLog retrieves one call log. Visibility follows the prospect the
// log belongs to.
func (h *CallLogHandler) GetCallLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	log, err := h.callLogSvc.GetCallLog(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Call log not found", err)
		return
	}

	if !h.authzSvc.CanViewProspect(user, log.Prospect) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_access", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	writeJSONResponse(w, http.StatusOK, log)
}

// UpdateCallLog updates a call log. Admins may edit any log; callers only
// their own.
func (h *CallLogHandler) UpdateCallLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	existing, err := h.callLogSvc.GetCallLog(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Call log not found", err)
		return
	}

	if !h.authzSvc.CanEditCallLog(user, existing) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_update", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	var log models.CallLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	log.ID = id
	log.ProspectID = existing.ProspectID
	log.CallerID = existing.CallerID

	if err := h.callLogSvc.UpdateCallLog(ctx, &log); err != nil {
		h.logger.WithError(err).Error("Failed to update call log")
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Failed to update call log", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, log)
}

// DeleteCallLog deletes a call log
func (h *CallLogHandler) DeleteCallLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	existing, err := h.callLogSvc.GetCallLog(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Call log not found", err)
		return
	}

	if !h.authzSvc.CanEditCallLog(user, existing) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_delete", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	if err := h.callLogSvc.DeleteCallLog(ctx, id); err != nil {
		h.logger.WithError(err).Error("Failed to delete call log")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete call log", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CallLogReport renders a printable PDF summary for one call log. The report
// embeds the prospect's contact details, so it is gated the same way as the
// log itself.
func (h *CallLogHandler) CallLogReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)

	log, err := h.callLogSvc.GetCallLog(ctx, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Call log not found", err)
		return
	}

	if !h.authzSvc.CanViewProspect(user, log.Prospect) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_call_log_report", id)
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	report, err := h.reportSvc.CallLogReport(ctx, id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate call log report")
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="call-log-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(report)
}
