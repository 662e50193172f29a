package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const msgMovimientoNotFound = "Movimiento no encontrado"

type movimientoStore interface {
	List(ctx context.Context, f model.MovimientoFilter, page model.Page) ([]model.MovimientoInventario, error)
	Get(ctx context.Context, id int64) (model.MovimientoInventario, error)
	Create(ctx context.Context, m model.MovimientoInventario) (model.MovimientoInventario, error)
	Update(ctx context.Context, m model.MovimientoInventario) (model.MovimientoInventario, error)
	Delete(ctx context.Context, id int64) error
}

type MovimientoService struct {
	store     movimientoStore
	productos existenceChecker
}

func NewMovimientoService(store movimientoStore, productos existenceChecker) *MovimientoService {
	return &MovimientoService{store: store, productos: productos}
}

func (s *MovimientoService) List(ctx context.Context, f model.MovimientoFilter, page model.Page) ([]model.MovimientoInventario, error) {
	return s.store.List(ctx, f, page)
}

func (s *MovimientoService) Get(ctx context.Context, id int64) (model.MovimientoInventario, error) {
	m, err := s.store.Get(ctx, id)
	return m, mapStoreError(err, msgMovimientoNotFound)
}

func (s *MovimientoService) Create(ctx context.Context, in model.MovimientoInput) (model.MovimientoInventario, error) {
	if err := s.checkProducto(ctx, in.ProductoID); err != nil {
		return model.MovimientoInventario{}, err
	}
	m, err := s.store.Create(ctx, in.Movimiento(0))
	return m, mapStoreError(err, msgMovimientoNotFound)
}

func (s *MovimientoService) Update(ctx context.Context, id int64, in model.MovimientoInput) (model.MovimientoInventario, error) {
	if err := s.checkProducto(ctx, in.ProductoID); err != nil {
		return model.MovimientoInventario{}, err
	}
	m, err := s.store.Update(ctx, in.Movimiento(id))
	return m, mapStoreError(err, msgMovimientoNotFound)
}

func (s *MovimientoService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgMovimientoNotFound)
	}
	return model.DeleteResult{Mensaje: "Movimiento eliminado exitosamente"}, nil
}

func (s *MovimientoService) checkProducto(ctx context.Context, id int64) error {
	return requireReferences(ctx, reference{id: id, exists: s.productos.Exists, message: msgProductoInexistente})
}
