package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type proveedorService interface {
	List(ctx context.Context, page model.Page) ([]model.Proveedor, error)
	Get(ctx context.Context, id int64) (model.Proveedor, error)
	Create(ctx context.Context, in model.ProveedorInput) (model.Proveedor, error)
	Update(ctx context.Context, id int64, in model.ProveedorInput) (model.Proveedor, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type ProveedorHandler struct {
	service   proveedorService
	validator *requestValidator
}

func NewProveedorHandler(service proveedorService) *ProveedorHandler {
	return &ProveedorHandler{service: service, validator: newRequestValidator()}
}

func (h *ProveedorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultSmallLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), page)
	writeList(w, items, err)
}

func (h *ProveedorHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *ProveedorHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *ProveedorHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *ProveedorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
