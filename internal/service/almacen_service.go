package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const msgAlmacenNotFound = "Almacén no encontrado"

type almacenStore interface {
	List(ctx context.Context, f model.AlmacenFilter, page model.Page) ([]model.Almacen, error)
	Get(ctx context.Context, id int64) (model.Almacen, error)
	Create(ctx context.Context, a model.Almacen) (model.Almacen, error)
	Update(ctx context.Context, a model.Almacen) (model.Almacen, error)
	Delete(ctx context.Context, id int64) error
}

type AlmacenService struct {
	store almacenStore
}

func NewAlmacenService(store almacenStore) *AlmacenService {
	return &AlmacenService{store: store}
}

func (s *AlmacenService) List(ctx context.Context, f model.AlmacenFilter, page model.Page) ([]model.Almacen, error) {
	return s.store.List(ctx, f, page)
}

func (s *AlmacenService) Get(ctx context.Context, id int64) (model.Almacen, error) {
	a, err := s.store.Get(ctx, id)
	return a, mapStoreError(err, msgAlmacenNotFound)
}

func (s *AlmacenService) Create(ctx context.Context, in model.AlmacenInput) (model.Almacen, error) {
	a, err := s.store.Create(ctx, in.Almacen(0))
	return a, mapStoreError(err, msgAlmacenNotFound)
}

func (s *AlmacenService) Update(ctx context.Context, id int64, in model.AlmacenInput) (model.Almacen, error) {
	a, err := s.store.Update(ctx, in.Almacen(id))
	return a, mapStoreError(err, msgAlmacenNotFound)
}

func (s *AlmacenService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgAlmacenNotFound)
	}
	return model.DeleteResult{Mensaje: "Almacén eliminado exitosamente"}, nil
}
