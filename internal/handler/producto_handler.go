package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type productoService interface {
	List(ctx context.Context, f model.ProductoFilter, page model.Page) ([]model.Producto, error)
	Get(ctx context.Context, id int64) (model.Producto, error)
	Create(ctx context.Context, in model.ProductoInput) (model.Producto, error)
	Update(ctx context.Context, id int64, in model.ProductoInput) (model.Producto, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type ProductoHandler struct {
	service   productoService
	validator *requestValidator
}

func NewProductoHandler(service productoService) *ProductoHandler {
	return &ProductoHandler{service: service, validator: newRequestValidator()}
}

func (h *ProductoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	var f model.ProductoFilter
	if f.CategoriaID, err = queryInt64(r, "categoria_id"); err != nil {
		writeError(w, err)
		return
	}
	if f.TipoPerecible, err = queryOneOf(r, "tipo_perecedero", model.Perecedero, model.NoPerecedero); err != nil {
		writeError(w, err)
		return
	}
	if f.Activo, err = queryBool(r, "activo"); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), f, page)
	writeList(w, items, err)
}

func (h *ProductoHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *ProductoHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *ProductoHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *ProductoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
