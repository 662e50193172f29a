package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type almacenService interface {
	List(ctx context.Context, f model.AlmacenFilter, page model.Page) ([]model.Almacen, error)
	Get(ctx context.Context, id int64) (model.Almacen, error)
	Create(ctx context.Context, in model.AlmacenInput) (model.Almacen, error)
	Update(ctx context.Context, id int64, in model.AlmacenInput) (model.Almacen, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type AlmacenHandler struct {
	service   almacenService
	validator *requestValidator
}

func NewAlmacenHandler(service almacenService) *AlmacenHandler {
	return &AlmacenHandler{service: service, validator: newRequestValidator()}
}

func (h *AlmacenHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	tipo, err := queryOneOf(r, "tipo")
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), model.AlmacenFilter{Tipo: tipo}, page)
	writeList(w, items, err)
}

func (h *AlmacenHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *AlmacenHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *AlmacenHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *AlmacenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
