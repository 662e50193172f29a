package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const msgProveedorNotFound = "Proveedor no encontrado"

type proveedorStore interface {
	List(ctx context.Context, page model.Page) ([]model.Proveedor, error)
	Get(ctx context.Context, id int64) (model.Proveedor, error)
	Create(ctx context.Context, p model.Proveedor) (model.Proveedor, error)
	Update(ctx context.Context, p model.Proveedor) (model.Proveedor, error)
	Delete(ctx context.Context, id int64) error
}

type ProveedorService struct {
	store proveedorStore
}

func NewProveedorService(store proveedorStore) *ProveedorService {
	return &ProveedorService{store: store}
}

func (s *ProveedorService) List(ctx context.Context, page model.Page) ([]model.Proveedor, error) {
	return s.store.List(ctx, page)
}

func (s *ProveedorService) Get(ctx context.Context, id int64) (model.Proveedor, error) {
	p, err := s.store.Get(ctx, id)
	return p, mapStoreError(err, msgProveedorNotFound)
}

func (s *ProveedorService) Create(ctx context.Context, in model.ProveedorInput) (model.Proveedor, error) {
	p, err := s.store.Create(ctx, in.Proveedor(0))
	return p, mapStoreError(err, msgProveedorNotFound)
}

func (s *ProveedorService) Update(ctx context.Context, id int64, in model.ProveedorInput) (model.Proveedor, error) {
	p, err := s.store.Update(ctx, in.Proveedor(id))
	return p, mapStoreError(err, msgProveedorNotFound)
}

func (s *ProveedorService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgProveedorNotFound)
	}
	return model.DeleteResult{Mensaje: "Proveedor eliminado exitosamente"}, nil
}
