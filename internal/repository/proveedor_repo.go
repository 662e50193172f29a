package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

const proveedorColumns = `id, nombre, persona_contacto, correo, telefono, direccion`

type ProveedorRepository struct {
	db DBTX
}

func NewProveedorRepository(db DBTX) *ProveedorRepository {
	return &ProveedorRepository{db: db}
}

func scanProveedor(row rowScanner) (model.Proveedor, error) {
	var p model.Proveedor
	err := row.Scan(&p.ID, &p.Nombre, &p.PersonaContacto, &p.Correo, &p.Telefono, &p.Direccion)
	return p, err
}

func (r *ProveedorRepository) List(ctx context.Context, page model.Page) ([]model.Proveedor, error) {
	var q filterQuery
	query := `SELECT ` + proveedorColumns + ` FROM proveedores` + q.paged(page)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, translateError("list proveedores", err)
	}
	return collect(rows, "list proveedores", scanProveedor)
}

func (r *ProveedorRepository) Get(ctx context.Context, id int64) (model.Proveedor, error) {
	p, err := scanProveedor(r.db.QueryRow(ctx,
		`SELECT `+proveedorColumns+` FROM proveedores WHERE id = $1`, id))
	if err != nil {
		return model.Proveedor{}, translateError("get proveedor", err)
	}
	return p, nil
}

func (r *ProveedorRepository) Create(ctx context.Context, p model.Proveedor) (model.Proveedor, error) {
	created, err := scanProveedor(r.db.QueryRow(ctx,
		`INSERT INTO proveedores (nombre, persona_contacto, correo, telefono, direccion)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+proveedorColumns,
		p.Nombre, p.PersonaContacto, p.Correo, p.Telefono, p.Direccion))
	if err != nil {
		return model.Proveedor{}, translateError("create proveedor", err)
	}
	return created, nil
}

func (r *ProveedorRepository) Update(ctx context.Context, p model.Proveedor) (model.Proveedor, error) {
	updated, err := scanProveedor(r.db.QueryRow(ctx,
		`UPDATE proveedores
		 SET nombre = $1, persona_contacto = $2, correo = $3, telefono = $4, direccion = $5
		 WHERE id = $6
		 RETURNING `+proveedorColumns,
		p.Nombre, p.PersonaContacto, p.Correo, p.Telefono, p.Direccion, p.ID))
	if err != nil {
		return model.Proveedor{}, translateError("update proveedor", err)
	}
	return updated, nil
}

func (r *ProveedorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "proveedores", id)
}

func (r *ProveedorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "proveedores", id)
}
