package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type productoProveedorService interface {
	List(ctx context.Context, f model.ProductoProveedorFilter, page model.Page) ([]model.ProductoProveedor, error)
	Get(ctx context.Context, id int64) (model.ProductoProveedor, error)
	Create(ctx context.Context, in model.ProductoProveedorInput) (model.ProductoProveedor, error)
	Update(ctx context.Context, id int64, in model.ProductoProveedorInput) (model.ProductoProveedor, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type ProductoProveedorHandler struct {
	service   productoProveedorService
	validator *requestValidator
}

func NewProductoProveedorHandler(service productoProveedorService) *ProductoProveedorHandler {
	return &ProductoProveedorHandler{service: service, validator: newRequestValidator()}
}

func (h *ProductoProveedorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultSmallLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	var f model.ProductoProveedorFilter
	if f.ProveedorID, err = queryInt64(r, "proveedor_id"); err != nil {
		writeError(w, err)
		return
	}
	if f.ProductoID, err = queryInt64(r, "producto_id"); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), f, page)
	writeList(w, items, err)
}

func (h *ProductoProveedorHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *ProductoProveedorHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *ProductoProveedorHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *ProductoProveedorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
