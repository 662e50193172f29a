package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

const (
	msgProductoProveedorNotFound = "Producto de proveedor no encontrado"
	msgProveedorInexistente      = "El proveedor especificado no existe"
	msgProductoInexistente       = "El producto especificado no existe"
)

type productoProveedorStore interface {
	List(ctx context.Context, f model.ProductoProveedorFilter, page model.Page) ([]model.ProductoProveedor, error)
	Get(ctx context.Context, id int64) (model.ProductoProveedor, error)
	Create(ctx context.Context, pp model.ProductoProveedor) (model.ProductoProveedor, error)
	Update(ctx context.Context, pp model.ProductoProveedor) (model.ProductoProveedor, error)
	Delete(ctx context.Context, id int64) error
}

type ProductoProveedorService struct {
	store       productoProveedorStore
	proveedores existenceChecker
	productos   existenceChecker
}

func NewProductoProveedorService(store productoProveedorStore, proveedores existenceChecker, productos existenceChecker) *ProductoProveedorService {
	return &ProductoProveedorService{store: store, proveedores: proveedores, productos: productos}
}

func (s *ProductoProveedorService) List(ctx context.Context, f model.ProductoProveedorFilter, page model.Page) ([]model.ProductoProveedor, error) {
	return s.store.List(ctx, f, page)
}

func (s *ProductoProveedorService) Get(ctx context.Context, id int64) (model.ProductoProveedor, error) {
	pp, err := s.store.Get(ctx, id)
	return pp, mapStoreError(err, msgProductoProveedorNotFound)
}

func (s *ProductoProveedorService) Create(ctx context.Context, in model.ProductoProveedorInput) (model.ProductoProveedor, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return model.ProductoProveedor{}, err
	}
	pp, err := s.store.Create(ctx, in.ProductoProveedor(0))
	return pp, mapStoreError(err, msgProductoProveedorNotFound)
}

func (s *ProductoProveedorService) Update(ctx context.Context, id int64, in model.ProductoProveedorInput) (model.ProductoProveedor, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return model.ProductoProveedor{}, err
	}
	pp, err := s.store.Update(ctx, in.ProductoProveedor(id))
	return pp, mapStoreError(err, msgProductoProveedorNotFound)
}

func (s *ProductoProveedorService) Delete(ctx context.Context, id int64) (model.DeleteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.DeleteResult{}, mapStoreError(err, msgProductoProveedorNotFound)
	}
	return model.DeleteResult{Mensaje: "Producto de proveedor eliminado exitosamente"}, nil
}

func (s *ProductoProveedorService) checkReferences(ctx context.Context, in model.ProductoProveedorInput) error {
	return requireReferences(ctx,
		reference{id: in.ProveedorID, exists: s.proveedores.Exists, message: msgProveedorInexistente},
		reference{id: in.ProductoID, exists: s.productos.Exists, message: msgProductoInexistente},
	)
}
