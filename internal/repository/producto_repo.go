package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const productoColumns = `id, nombre, descripcion, categoria_id, tipo_perecible, stock_minimo, unidad, precio, activo`

type ProductoRepository struct {
	db DBTX
}

func NewProductoRepository(db DBTX) *ProductoRepository {
	return &ProductoRepository{db: db}
}

func scanProducto(row rowScanner) (model.Producto, error) {
	var p model.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.TipoPerecible,
		&p.StockMinimo, &p.Unidad, &p.Precio, &p.Activo)
	return p, err
}

func (r *ProductoRepository) List(ctx context.Context, f model.ProductoFilter, page model.Page) ([]model.Producto, error) {
	var q filterQuery
	eqIfSet(&q, "categoria_id", f.CategoriaID)
	eqIfSet(&q, "tipo_perecible", f.TipoPerecible)
	eqIfSet(&q, "activo", f.Activo)
	query := `SELECT ` + productoColumns + ` FROM productos` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list productos", err)
	}
	return collect(rows, "list productos", scanProducto)
}

func (r *ProductoRepository) Get(ctx context.Context, id int64) (model.Producto, error) {
	p, err := scanProducto(r.db.QueryRow(ctx,
		`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id))
	if err != nil {
		return model.Producto{}, translateError("get producto", err)
	}
	return p, nil
}

func (r *ProductoRepository) Create(ctx context.Context, p model.Producto) (model.Producto, error) {
	created, err := scanProducto(r.db.QueryRow(ctx,
		`INSERT INTO productos (nombre, descripcion, categoria_id, tipo_perecible, stock_minimo, unidad, precio, activo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+productoColumns,
		p.Nombre, p.Descripcion, p.CategoriaID, p.TipoPerecible, p.StockMinimo, p.Unidad, p.Precio, p.Activo))
	if err != nil {
		return model.Producto{}, translateError("create producto", err)
	}
	return created, nil
}

func (r *ProductoRepository) Update(ctx context.Context, p model.Producto) (model.Producto, error) {
	updated, err := scanProducto(r.db.QueryRow(ctx,
		`UPDATE productos
		 SET nombre = $1, descripcion = $2, categoria_id = $3, tipo_perecible = $4,
		     stock_minimo = $5, unidad = $6, precio = $7, activo = $8
		 WHERE id = $9
		 RETURNING `+productoColumns,
		p.Nombre, p.Descripcion, p.CategoriaID, p.TipoPerecible, p.StockMinimo, p.Unidad, p.Precio, p.Activo, p.ID))
	if err != nil {
		return model.Producto{}, translateError("update producto", err)
	}
	return updated, nil
}

func (r *ProductoRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "productos", id)
}

func (r *ProductoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "productos", id)
}
