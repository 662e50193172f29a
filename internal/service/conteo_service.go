package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const (
	msgConteoNotFound     = "Conteo de inventario no encontrado"
	msgAlmacenInexistente = "El almacén especificado no existe"
)

type conteoStore interface {
	List(ctx context.Context, f model.ConteoFilter, page model.Page) ([]model.ConteoInventario, error)
	Get(ctx context.Context, id int64) (model.ConteoInventario, error)
	Create(ctx context.Context, c model.ConteoInventario) (model.ConteoInventario, error)
	Update(ctx context.Context, c model.ConteoInventario) (model.ConteoInventario, error)
	Delete(ctx context.Context, id int64) error
}

type ConteoService struct {
	store     conteoStore
	productos existenceChecker
	almacenes existenceChecker
}

func NewConteoService(store conteoStore, productos existenceChecker, almacenes existenceChecker) *ConteoService {
	return &ConteoService{store: store, productos: productos, almacenes: almacenes}
}

func (s *ConteoService) List(ctx context.Context, f model.ConteoFilter, page model.Page) ([]model.ConteoInventario, error) {
	return s.store.List(ctx, f, page)
}

func (s *ConteoService) Get(ctx context.Context, id int64) (model.ConteoInventario, error) {
	c, err := s.store.Get(ctx, id)
	return c, mapStoreError(err, msgConteoNotFound)
}

func (s *ConteoService) Create(ctx context.Context, in model.ConteoInput) (model.ConteoInventario, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return model.ConteoInventario{}, err
	}
	c, err := s.store.Create(ctx, in.Conteo(0))
	return c, mapStoreError(err, msgConteoNotFound)
}

func (s *ConteoService) Update(ctx context.Context, id int64, in model.ConteoInput) (model.ConteoInventario, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return model.ConteoInventario{}, err
	}
	c, err := s.store.Update(ctx, in.Conteo(id))
	return c, mapStoreError(err, msgConteoNotFound)
}

func (s *ConteoService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgConteoNotFound)
	}
	return model.DeleteResult{Mensaje: "Conteo de inventario eliminado exitosamente"}, nil
}

func (s *ConteoService) checkReferences(ctx context.Context, in model.ConteoInput) error {
	return requireReferences(ctx,
		reference{id: in.ProductoID, exists: s.productos.Exists, message: msgProductoInexistente},
		reference{id: in.AlmacenID, exists: s.almacenes.Exists, message: msgAlmacenInexistente},
	)
}
