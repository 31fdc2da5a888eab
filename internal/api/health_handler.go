package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cloudnexus/task-api/internal/api/shared"
	"github.com/cloudnexus/task-api/internal/store"
)

// healthCheckTimeout bounds the database probe so a hung connection cannot
// stall load balancer health checks.
const healthCheckTimeout = 5 * time.Second

// DatabaseHealth describes the outcome of the store connectivity probe.
type DatabaseHealth struct {
	Status    string  `json:"status"`
	LatencyMs float64 `json:"latency_ms,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// HealthResponse represents the response data for the health endpoint.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  DatabaseHealth `json:"database"`
	Version   string         `json:"version"`
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	tasks   store.TaskStore
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a new HealthHandler probing the given store.
func NewHealthHandler(tasks store.TaskStore, version string, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{
		tasks:   tasks,
		version: version,
		log:     log.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests
// It reports API status and tests database connectivity. A failed probe
// produces a degraded 503 response, never an unhandled fault: load
// balancers and monitors rely on this endpoint staying well-formed.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	dbHealth := DatabaseHealth{Status: "connected"}
	status := "healthy"
	httpStatus := http.StatusOK

	start := time.Now()
	if err := h.tasks.Ping(ctx); err != nil {
		h.log.Error("database health check failed", slog.String("error", err.Error()))
		// Keep the detail generic so connection parameters never leak
		dbHealth = DatabaseHealth{Status: "disconnected", Error: "database unreachable"}
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		dbHealth.LatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
	}

	shared.RespondWithJSON(w, r, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbHealth,
		Version:   h.version,
	})
}
