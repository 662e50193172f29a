package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-inventory/internal/model"
)

// crudHandler is the part every entity handler shares: get, create, update
// and delete by id. List differs per entity because of its filters.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Mount registers the standard CRUD surface. Both "/" and "" reach the
// collection so clients may omit the trailing slash.
func Mount(r chi.Router, prefix string, h crudHandler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func writeList[T any](w http.ResponseWriter, items []T, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func getByID[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, int64) (T, error)) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func createFrom[In any, T any](w http.ResponseWriter, r *http.Request, rv *requestValidator, create func(context.Context, In) (T, error)) {
	var in In
	if err := decodeAndValidate(r, rv, &in); err != nil {
		writeError(w, err)
		return
	}

	item, err := create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func updateFrom[In any, T any](w http.ResponseWriter, r *http.Request, rv *requestValidator, update func(context.Context, int64, In) (T, error)) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in In
	if err := decodeAndValidate(r, rv, &in); err != nil {
		writeError(w, err)
		return
	}

	item, err := update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func deleteByID(w http.ResponseWriter, r *http.Request, del func(context.Context, int64) (model.DeleteResult, error)) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := del(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
