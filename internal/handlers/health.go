package handlers

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/logger"
)

// HealthHandler exposes liveness and readiness probes
type HealthHandler struct {
	logger      *logger.Logger
	db          *database.Connection
	redisClient *redis.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *logger.Logger, db *database.Connection, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{logger: logger, db: db, redisClient: redisClient}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Liveness).Methods("GET")
	router.HandleFunc("/health/live", h.Liveness).Methods("GET")
	router.HandleFunc("/health/ready", h.Readiness).Methods("GET")
}

// healthStatus is the probe response body
type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
	Time   time.Time         `json:"time"`
}

// Liveness reports that the process is up
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, healthStatus{Status: "ok", Time: time.Now()})
}

// Readiness checks the database and cache backends. Redis being down
// degrades caching but does not fail readiness.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checks := make(map[string]string)
	status := http.StatusOK

	sqlDB, err := h.db.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.WithError(err).Error("Database readiness check failed")
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			h.logger.WithError(err).Warn("Redis readiness check failed")
			checks["redis"] = "unavailable"
		} else {
			checks["redis"] = "ok"
		}
	} else {
		checks["redis"] = "disabled"
	}

	overall := "ready"
	if status != http.StatusOK {
		overall = "not_ready"
	}
	writeJSONResponse(w, status, healthStatus{Status: overall, Checks: checks, Time: time.Now()})
}
