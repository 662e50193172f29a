package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const productoProveedorColumns = `id, proveedor_id, producto_id, precio, cantidad_minima_orden, dias_entrega`

type ProductoProveedorRepository struct {
	db DBTX
}

func NewProductoProveedorRepository(db DBTX) *ProductoProveedorRepository {
	return &ProductoProveedorRepository{db: db}
}

func scanProductoProveedor(row rowScanner) (model.ProductoProveedor, error) {
	var pp model.ProductoProveedor
	err := row.Scan(&pp.ID, &pp.ProveedorID, &pp.ProductoID, &pp.Precio, &pp.CantidadMinimaOrden, &pp.TiempoEntregaDias)
	return pp, err
}

func (r *ProductoProveedorRepository) List(ctx context.Context, f model.ProductoProveedorFilter, page model.Page) ([]model.ProductoProveedor, error) {
	var q filterQuery
	eqIfSet(&q, "proveedor_id", f.ProveedorID)
	eqIfSet(&q, "producto_id", f.ProductoID)
	query := `SELECT ` + productoProveedorColumns + ` FROM proveedor_productos` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list productos de proveedor", err)
	}
	return collect(rows, "list productos de proveedor", scanProductoProveedor)
}

func (r *ProductoProveedorRepository) Get(ctx context.Context, id int64) (model.ProductoProveedor, error) {
	pp, err := scanProductoProveedor(r.db.QueryRow(ctx,
		`SELECT `+productoProveedorColumns+` FROM proveedor_productos WHERE id = $1`, id))
	if err != nil {
		return model.ProductoProveedor{}, translateError("get producto de proveedor", err)
	}
	return pp, nil
}

func (r *ProductoProveedorRepository) Create(ctx context.Context, pp model.ProductoProveedor) (model.ProductoProveedor, error) {
	created, err := scanProductoProveedor(r.db.QueryRow(ctx,
		`INSERT INTO proveedor_productos (proveedor_id, producto_id, precio, cantidad_minima_orden, dias_entrega)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+productoProveedorColumns,
		pp.ProveedorID, pp.ProductoID, pp.Precio, pp.CantidadMinimaOrden, pp.TiempoEntregaDias))
	if err != nil {
		return model.ProductoProveedor{}, translateError("create producto de proveedor", err)
	}
	return created, nil
}

func (r *ProductoProveedorRepository) Update(ctx context.Context, pp model.ProductoProveedor) (model.ProductoProveedor, error) {
	updated, err := scanProductoProveedor(r.db.QueryRow(ctx,
		`UPDATE proveedor_productos
		 SET proveedor_id = $1, producto_id = $2, precio = $3, cantidad_minima_orden = $4, dias_entrega = $5
		 WHERE id = $6
		 RETURNING `+productoProveedorColumns,
		pp.ProveedorID, pp.ProductoID, pp.Precio, pp.CantidadMinimaOrden, pp.TiempoEntregaDias, pp.ID))
	if err != nil {
		return model.ProductoProveedor{}, translateError("update producto de proveedor", err)
	}
	return updated, nil
}

func (r *ProductoProveedorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "proveedor_productos", id)
}
