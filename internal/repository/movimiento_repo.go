package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const movimientoColumns = `id, producto_id, cantidad, tipo_movimiento, numero_referencia, notas, fecha`

type MovimientoRepository struct {
	db DBTX
}

func NewMovimientoRepository(db DBTX) *MovimientoRepository {
	return &MovimientoRepository{db: db}
}

func scanMovimiento(row rowScanner) (model.MovimientoInventario, error) {
	var m model.MovimientoInventario
	err := row.Scan(&m.ID, &m.ProductoID, &m.Cantidad, &m.TipoMovimiento, &m.NumeroReferencia, &m.Notas, &m.Fecha)
	return m, err
}

func (r *MovimientoRepository) List(ctx context.Context, f model.MovimientoFilter, page model.Page) ([]model.MovimientoInventario, error) {
	var q filterQuery
	eqIfSet(&q, "producto_id", f.ProductoID)
	eqIfSet(&q, "tipo_movimiento", f.TipoMovimiento)
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list movimientos", err)
	}
	return collect(rows, "list movimientos", scanMovimiento)
}

func (r *MovimientoRepository) Get(ctx context.Context, id int64) (model.MovimientoInventario, error) {
	m, err := scanMovimiento(r.db.QueryRow(ctx,
		`SELECT `+movimientoColumns+` FROM movimientos_inventario WHERE id = $1`, id))
	if err != nil {
		return model.MovimientoInventario{}, translateError("get movimiento", err)
	}
	return m, nil
}

// Create lets the database stamp fecha.
func (r *MovimientoRepository) Create(ctx context.Context, m model.MovimientoInventario) (model.MovimientoInventario, error) {
	created, err := scanMovimiento(r.db.QueryRow(ctx,
		`INSERT INTO movimientos_inventario (producto_id, cantidad, tipo_movimiento, numero_referencia, notas)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+movimientoColumns,
		m.ProductoID, m.Cantidad, m.TipoMovimiento, m.NumeroReferencia, m.Notas))
	if err != nil {
		return model.MovimientoInventario{}, translateError("create movimiento", err)
	}
	return created, nil
}

// Update leaves fecha as recorded at creation.
func (r *MovimientoRepository) Update(ctx context.Context, m model.MovimientoInventario) (model.MovimientoInventario, error) {
	updated, err := scanMovimiento(r.db.QueryRow(ctx,
		`UPDATE movimientos_inventario
		 SET producto_id = $1, cantidad = $2, tipo_movimiento = $3, numero_referencia = $4, notas = $5
		 WHERE id = $6
		 RETURNING `+movimientoColumns,
		m.ProductoID, m.Cantidad, m.TipoMovimiento, m.NumeroReferencia, m.Notas, m.ID))
	if err != nil {
		return model.MovimientoInventario{}, translateError("update movimiento", err)
	}
	return updated, nil
}

func (r *MovimientoRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "movimientos_inventario", id)
}
