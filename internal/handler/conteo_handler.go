package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type conteoService interface {
	List(ctx context.Context, f model.ConteoFilter, page model.Page) ([]model.ConteoInventario, error)
	Get(ctx context.Context, id int64) (model.ConteoInventario, error)
	Create(ctx context.Context, in model.ConteoInput) (model.ConteoInventario, error)
	Update(ctx context.Context, id int64, in model.ConteoInput) (model.ConteoInventario, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type ConteoHandler struct {
	service   conteoService
	validator *requestValidator
}

func NewConteoHandler(service conteoService) *ConteoHandler {
	return &ConteoHandler{service: service, validator: newRequestValidator()}
}

func (h *ConteoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	var f model.ConteoFilter
	if f.ProductoID, err = queryInt64(r, "producto_id"); err != nil {
		writeError(w, err)
		return
	}
	if f.AlmacenID, err = queryInt64(r, "almacen_id"); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), f, page)
	writeList(w, items, err)
}

func (h *ConteoHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *ConteoHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *ConteoHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *ConteoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
