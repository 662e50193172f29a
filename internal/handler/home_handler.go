package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type homeService interface {
	Summary(ctx context.Context) (model.HomeStats, error)
}

type HomeHandler struct {
	service homeService
}

func NewHomeHandler(service homeService) *HomeHandler {
	return &HomeHandler{service: service}
}

func (h *HomeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
