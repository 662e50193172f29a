package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const (
	msgProductoNotFound     = "Producto no encontrado"
	msgCategoriaInexistente = "La categoría especificada no existe"
)

type productoStore interface {
	List(ctx context.Context, f model.ProductoFilter, page model.Page) ([]model.Producto, error)
	Get(ctx context.Context, id int64) (model.Producto, error)
	Create(ctx context.Context, p model.Producto) (model.Producto, error)
	Update(ctx context.Context, p model.Producto) (model.Producto, error)
	Delete(ctx context.Context, id int64) error
}

type existenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ProductoService struct {
	store      productoStore
	categorias existenceChecker
}

func NewProductoService(store productoStore, categorias existenceChecker) *ProductoService {
	return &ProductoService{store: store, categorias: categorias}
}

func (s *ProductoService) List(ctx context.Context, f model.ProductoFilter, page model.Page) ([]model.Producto, error) {
	return s.store.List(ctx, f, page)
}

func (s *ProductoService) Get(ctx context.Context, id int64) (model.Producto, error) {
	p, err := s.store.Get(ctx, id)
	return p, mapStoreError(err, msgProductoNotFound)
}

// Create refuses products whose category does not exist; nothing is written in that case.
func (s *ProductoService) Create(ctx context.Context, in model.ProductoInput) (model.Producto, error) {
	if err := s.checkCategoria(ctx, in.CategoriaID); err != nil {
		return model.Producto{}, err
	}
	p, err := s.store.Create(ctx, in.Producto(0))
	return p, mapStoreError(err, msgProductoNotFound)
}

func (s *ProductoService) Update(ctx context.Context, id int64, in model.ProductoInput) (model.Producto, error) {
	if err := s.checkCategoria(ctx, in.CategoriaID); err != nil {
		return model.Producto{}, err
	}
	p, err := s.store.Update(ctx, in.Producto(id))
	return p, mapStoreError(err, msgProductoNotFound)
}

func (s *ProductoService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgProductoNotFound)
	}
	return model.DeleteResult{Mensaje: "Producto eliminado exitosamente"}, nil
}

func (s *ProductoService) checkCategoria(ctx context.Context, id int64) error {
	return requireReferences(ctx, reference{id: id, exists: s.categorias.Exists, message: msgCategoriaInexistente})
}
