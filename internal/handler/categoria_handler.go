package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type categoriaService interface {
	List(ctx context.Context, f model.CategoriaFilter, page model.Page) ([]model.Categoria, error)
	Get(ctx context.Context, id int64) (model.Categoria, error)
	Create(ctx context.Context, in model.CategoriaInput) (model.Categoria, error)
	Update(ctx context.Context, id int64, in model.CategoriaInput) (model.Categoria, error)
	Delete(ctx context.Context, id int64) (model.DeleteResult, error)
}

type CategoriaHandler struct {
	service   categoriaService
	validator *requestValidator
}

func NewCategoriaHandler(service categoriaService) *CategoriaHandler {
	return &CategoriaHandler{service: service, validator: newRequestValidator()}
}

func (h *CategoriaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	tipo, err := queryOneOf(r, "tipo", model.CategoriaTipos...)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.service.List(r.Context(), model.CategoriaFilter{Tipo: tipo}, page)
	writeList(w, items, err)
}

func (h *CategoriaHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *CategoriaHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *CategoriaHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *CategoriaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.service.Delete)
}
