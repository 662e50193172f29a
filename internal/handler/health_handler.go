package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"restaurant-inventory/internal/model"
)

type pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthStatus{Status: "ok"})
}

// Ready reports 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Health(ctx); err != nil {
		slog.Warn("readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, model.HealthStatus{Status: "unavailable", Database: "down"})
		return
	}
	writeJSON(w, http.StatusOK, model.HealthStatus{Status: "ok", Database: "up"})
}
