package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const categoriaColumns = `id, nombre, tipo, descripcion`

type CategoriaRepository struct {
	db DBTX
}

func NewCategoriaRepository(db DBTX) *CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func scanCategoria(row rowScanner) (model.Categoria, error) {
	var c model.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Tipo, &c.Descripcion)
	return c, err
}

func (r *CategoriaRepository) List(ctx context.Context, f model.CategoriaFilter, page model.Page) ([]model.Categoria, error) {
	var q filterQuery
	eqIfSet(&q, "tipo", f.Tipo)
	query := `SELECT ` + categoriaColumns + ` FROM categorias` + q.where() + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list categorias", err)
	}
	return collect(rows, "list categorias", scanCategoria)
}

func (r *CategoriaRepository) Get(ctx context.Context, id int64) (model.Categoria, error) {
	c, err := scanCategoria(r.db.QueryRow(ctx,
		`SELECT `+categoriaColumns+` FROM categorias WHERE id = $1`, id))
	if err != nil {
		return model.Categoria{}, translateError("get categoria", err)
	}
	return c, nil
}

func (r *CategoriaRepository) Create(ctx context.Context, c model.Categoria) (model.Categoria, error) {
	created, err := scanCategoria(r.db.QueryRow(ctx,
		`INSERT INTO categorias (nombre, tipo, descripcion)
		 VALUES ($1, $2, $3)
		 RETURNING `+categoriaColumns,
		c.Nombre, c.Tipo, c.Descripcion))
	if err != nil {
		return model.Categoria{}, translateError("create categoria", err)
	}
	return created, nil
}

func (r *CategoriaRepository) Update(ctx context.Context, c model.Categoria) (model.Categoria, error) {
	updated, err := scanCategoria(r.db.QueryRow(ctx,
		`UPDATE categorias SET nombre = $1, tipo = $2, descripcion = $3
		 WHERE id = $4
		 RETURNING `+categoriaColumns,
		c.Nombre, c.Tipo, c.Descripcion, c.ID))
	if err != nil {
		return model.Categoria{}, translateError("update categoria", err)
	}
	return updated, nil
}

func (r *CategoriaRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "categorias", id)
}

func (r *CategoriaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "categorias", id)
}
