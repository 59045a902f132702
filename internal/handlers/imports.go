package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/importer"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/middleware"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/services"
)

// ImportHandler handles spreadsheet import uploads
type ImportHandler struct {
	logger    *logger.Logger
	importSvc services.ImportService
	authzSvc  services.AuthorizationService

	importCounter *prometheus.CounterVec
	rowCounter    prometheus.Counter
}

// NewImportHandler creates a new import handler
func NewImportHandler(
	logger *logger.Logger,
	importSvc services.ImportService,
	authzSvc services.AuthorizationService,
) *ImportHandler {
	// Create a new registry for tests to avoid conflicts
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &ImportHandler{
		logger:    logger,
		importSvc: importSvc,
		authzSvc:  authzSvc,
		importCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prospect_imports_total",
			Help: "Total number of spreadsheet import attempts",
		}, []string{"result"}),
		rowCounter: factory.NewCounter(prometheus.CounterOpts{
			Name: "prospect_import_rows_total",
			Help: "Total number of prospect rows inserted by imports",
		}),
	}
}

// RegisterRoutes registers import routes
func (h *ImportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/prospects/import", h.ImportSpreadsheet).Methods("POST")
}

// ImportSpreadsheet accepts a multipart xlsx upload and runs the import
// pipeline. Mapping and validation failures reject the whole file; nothing
// is inserted for a rejected upload.
func (h *ImportHandler) ImportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUserFromContext(ctx)
	if !h.authzSvc.CanManageRoster(user) {
		h.authzSvc.LogSecurityViolation(ctx, user, "unauthorized_import", "")
		writeErrorResponse(w, http.StatusForbidden, "Access denied", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Missing file upload", err)
		return
	}
	defer file.Close()

	result, err := h.importSvc.ImportSpreadsheet(ctx, file, header.Filename, user)
	if err != nil {
		h.handleImportError(w, err)
		return
	}

	h.importCounter.WithLabelValues("accepted").Inc()
	h.rowCounter.Add(float64(result.Inserted))
	writeJSONResponse(w, http.StatusCreated, result)
}

// handleImportError maps pipeline failures to HTTP statuses. The mapping
// distinguishes unreadable files, incomplete column coverage, duplicate
// batches, oversized sheets, and mid-batch insert failures.
func (h *ImportHandler) handleImportError(w http.ResponseWriter, err error) {
	var missing *importer.MissingFieldsError
	var tooMany *services.TooManyRowsError
	var partial *services.PartialInsertError

	switch {
	case errors.As(err, &missing):
		h.importCounter.WithLabelValues("missing_columns").Inc()
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Required columns missing", err)
	case errors.Is(err, services.ErrDuplicateBatch):
		h.importCounter.WithLabelValues("duplicate").Inc()
		writeErrorResponse(w, http.StatusConflict, "Duplicate import", err)
	case errors.Is(err, importer.ErrNoSheet), errors.Is(err, importer.ErrEmptySheet),
		errors.Is(err, services.ErrNoDataRows):
		h.importCounter.WithLabelValues("empty").Inc()
		writeErrorResponse(w, http.StatusBadRequest, "Sheet has no usable data", err)
	case errors.As(err, &tooMany):
		h.importCounter.WithLabelValues("too_large").Inc()
		writeErrorResponse(w, http.StatusRequestEntityTooLarge, "Sheet exceeds row limit", err)
	case errors.As(err, &partial):
		h.importCounter.WithLabelValues("partial_failure").Inc()
		h.logger.WithError(err).Error("Import failed mid-batch")
		writeErrorResponse(w, http.StatusInternalServerError, "Import failed partway through", err)
	default:
		h.importCounter.WithLabelValues("invalid_file").Inc()
		writeErrorResponse(w, http.StatusBadRequest, "Could not read spreadsheet", err)
	}
}
