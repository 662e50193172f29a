package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const msgCategoriaNotFound = "Categoría no encontrada"

type categoriaStore interface {
	List(ctx context.Context, f model.CategoriaFilter, page model.Page) ([]model.Categoria, error)
	Get(ctx context.Context, id int64) (model.Categoria, error)
	Create(ctx context.Context, c model.Categoria) (model.Categoria, error)
	Update(ctx context.Context, c model.Categoria) (model.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

type CategoriaService struct {
	store categoriaStore
}

func NewCategoriaService(store categoriaStore) *CategoriaService {
	return &CategoriaService{store: store}
}

func (s *CategoriaService) List(ctx context.Context, f model.CategoriaFilter, page model.Page) ([]model.Categoria, error) {
	return s.store.List(ctx, f, page)
}

func (s *CategoriaService) Get(ctx context.Context, id int64) (model.Categoria, error) {
	c, err := s.store.Get(ctx, id)
	return c, mapStoreError(err, msgCategoriaNotFound)
}

func (s *CategoriaService) Create(ctx context.Context, in model.CategoriaInput) (model.Categoria, error) {
	c, err := s.store.Create(ctx, in.Categoria(0))
	return c, mapStoreError(err, msgCategoriaNotFound)
}

func (s *CategoriaService) Update(ctx context.Context, id int64, in model.CategoriaInput) (model.Categoria, error) {
	c, err := s.store.Update(ctx, in.Categoria(id))
	return c, mapStoreError(err, msgCategoriaNotFound)
}

func (s *CategoriaService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgCategoriaNotFound)
	}
	return model.DeleteResult{Mensaje: "Categoría eliminada exitosamente"}, nil
}
