package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const almacenColumns = `id, nombre, tipo, rango_temperatura, capacidad, uso_actual`

type AlmacenRepository struct {
	db DBTX
}

func NewAlmacenRepository(db DBTX) *AlmacenRepository {
	return &AlmacenRepository{db: db}
}

func scanAlmacen(row rowScanner) (model.Almacen, error) {
	var a model.Almacen
	err := row.Scan(&a.ID, &a.Nombre, &a.Tipo, &a.RangoTemperatura, &a.Capacidad, &a.UsoActual)
	return a, err
}

func (r *AlmacenRepository) List(ctx context.Context, f model.AlmacenFilter, page model.Page) ([]model.Almacen, error) {
	var q filterQuery
	eqIfSet(&q, "tipo", f.Tipo)
	query := `SELECT ` + almacenColumns + ` FROM almacenes` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list almacenes", err)
	}
	return collect(rows, "list almacenes", scanAlmacen)
}

func (r *AlmacenRepository) Get(ctx context.Context, id int64) (model.Almacen, error) {
	a, err := scanAlmacen(r.db.QueryRow(ctx,
		`SELECT `+almacenColumns+` FROM almacenes WHERE id = $1`, id))
	if err != nil {
		return model.Almacen{}, translateError("get almacen", err)
	}
	return a, nil
}

func (r *AlmacenRepository) Create(ctx context.Context, a model.Almacen) (model.Almacen, error) {
	created, err := scanAlmacen(r.db.QueryRow(ctx,
		`INSERT INTO almacenes (nombre, tipo, rango_temperatura, capacidad, uso_actual)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+almacenColumns,
		a.Nombre, a.Tipo, a.RangoTemperatura, a.Capacidad, a.UsoActual))
	if err != nil {
		return model.Almacen{}, translateError("create almacen", err)
	}
	return created, nil
}

func (r *AlmacenRepository) Update(ctx context.Context, a model.Almacen) (model.Almacen, error) {
	updated, err := scanAlmacen(r.db.QueryRow(ctx,
		`UPDATE almacenes
		 SET nombre = $1, tipo = $2, rango_temperatura = $3, capacidad = $4, uso_actual = $5
		 WHERE id = $6
		 RETURNING `+almacenColumns,
		a.Nombre, a.Tipo, a.RangoTemperatura, a.Capacidad, a.UsoActual, a.ID))
	if err != nil {
		return model.Almacen{}, translateError("update almacen", err)
	}
	return updated, nil
}

func (r *AlmacenRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "almacenes", id)
}

func (r *AlmacenRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "almacenes", id)
}
