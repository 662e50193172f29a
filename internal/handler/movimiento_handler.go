package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type movimientoService interface {
	List(ctx context.Context, f model.MovimientoFilter, page model.Page) ([]model.MovimientoInventario, error)
	Get(ctx context.Context, id int64) (model.MovimientoInventario, error)
	Create(ctx context.Context, in model.MovimientoInput) (model.MovimientoInventario, error)
	Update(ctx context.Context, id int64, in model.MovimientoInput) (model.MovimientoInventario, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type MovimientoHandler struct {
	service   movimientoService
	validator *requestValidator
}

func NewMovimientoHandler(service movimientoService) *MovimientoHandler {
	return &MovimientoHandler{service: service, validator: newRequestValidator()}
}

func (h *MovimientoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	var f model.MovimientoFilter
	if f.ProductoID, err = queryInt64(r, "producto_id"); err != nil {
		writeError(w, err)
		return
	}
	if f.TipoMovimiento, err = queryOneOf(r, "tipo_movimiento", model.MovimientoEntrada, model.MovimientoSalida); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), f, page)
	writeList(w, items, err)
}

func (h *MovimientoHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *MovimientoHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *MovimientoHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *MovimientoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
