package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const conteoColumns = `id, producto_id, almacen_id, cantidad, contado_por, fecha_ultimo_conteo`

type ConteoRepository struct {
	db DBTX
}

func NewConteoRepository(db DBTX) *ConteoRepository {
	return &ConteoRepository{db: db}
}

func scanConteo(row rowScanner) (model.ConteoInventario, error) {
	var c model.ConteoInventario
	err := row.Scan(&c.ID, &c.ProductoID, &c.AlmacenID, &c.Cantidad, &c.Responsable, &c.FechaUltimoConteo)
	return c, err
}

func (r *ConteoRepository) List(ctx context.Context, f model.ConteoFilter, page model.Page) ([]model.ConteoInventario, error) {
	var q filterQuery
	eqIfSet(&q, "producto_id", f.ProductoID)
	eqIfSet(&q, "almacen_id", f.AlmacenID)
	query := `SELECT ` + conteoColumns + ` FROM conteos_inventario` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list conteos", err)
	}
	return collect(rows, "list conteos", scanConteo)
}

func (r *ConteoRepository) Get(ctx context.Context, id int64) (model.ConteoInventario, error) {
	c, err := scanConteo(r.db.QueryRow(ctx,
		`SELECT `+conteoColumns+` FROM conteos_inventario WHERE id = $1`, id))
	if err != nil {
		return model.ConteoInventario{}, translateError("get conteo", err)
	}
	return c, nil
}

func (r *ConteoRepository) Create(ctx context.Context, c model.ConteoInventario) (model.ConteoInventario, error) {
	created, err := scanConteo(r.db.QueryRow(ctx,
		`INSERT INTO conteos_inventario (producto_id, almacen_id, cantidad, contado_por)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+conteoColumns,
		c.ProductoID, c.AlmacenID, c.Cantidad, c.Responsable))
	if err != nil {
		return model.ConteoInventario{}, translateError("create conteo", err)
	}
	return created, nil
}

// Update is a recount, so fecha_ultimo_conteo moves to now.
func (r *ConteoRepository) Update(ctx context.Context, c model.ConteoInventario) (model.ConteoInventario, error) {
	updated, err := scanConteo(r.db.QueryRow(ctx,
		`UPDATE conteos_inventario
		 SET producto_id = $1, almacen_id = $2, cantidad = $3, contado_por = $4, fecha_ultimo_conteo = now()
		 WHERE id = $5
		 RETURNING `+conteoColumns,
		c.ProductoID, c.AlmacenID, c.Cantidad, c.Responsable, c.ID))
	if err != nil {
		return model.ConteoInventario{}, translateError("update conteo", err)
	}
	return updated, nil
}

func (r *ConteoRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "conteos_inventario", id)
}
