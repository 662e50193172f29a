package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"restaurant-inventory/internal/model"
)

const (
	defaultLimit      = 100
	defaultSmallLimit = 10
	maxLimit          = 500
)

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("id must be a positive integer", "id")
	}
	return id, nil
}

// parsePage reads skip and limit; limit is clamped to [1, maxLimit].
func parsePage(r *http.Request, fallbackLimit int) (model.Page, error) {
	page := model.Page{Skip: 0, Limit: fallbackLimit}
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("skip")); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return model.Page{}, badRequest("skip must be a non-negative integer", "skip")
		}
		page.Skip = skip
	}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return model.Page{}, badRequest("limit must be an integer", "limit")
		}
		page.Limit = limit
	}

	page.Limit = max(1, min(page.Limit, maxLimit))
	return page, nil
}

func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, badRequest(key+" must be an integer", key)
	}
	return &v, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, badRequest(key+" must be true or false", key)
	}
	return &v, nil
}

// queryOneOf returns nil when key is absent and rejects values outside allowed.
func queryOneOf(r *http.Request, key string, allowed ...string) (*string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	if len(allowed) == 0 {
		return &raw, nil
	}
	for _, a := range allowed {
		if raw == a {
			return &raw, nil
		}
	}
	return nil, badRequest(key+" must be one of: "+strings.Join(allowed, " "), key)
}
