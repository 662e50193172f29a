package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/model"
	"restaurant-inventory/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError renders err as {"detail": ...}. Every 401 carries the bearer challenge.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		detail = apiErr.Message
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
		detail = "not found"
	case errors.Is(err, model.ErrConstraintViolation):
		status = http.StatusBadRequest
		detail = "Los datos no cumplen las restricciones"
	default:
		slog.Error("unhandled error", "error", err.Error())
	}

	if status == http.StatusUnauthorized {
		middleware.Challenge(w)
	}
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

func badRequest(message string, field string) error {
	return apierror.Validation(message, field)
}
