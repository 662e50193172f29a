package repository

import (
	"context"

	"restaurant-inventory/internal/model"
)

type HomeRepository struct {
	db DBTX
}

func NewHomeRepository(db DBTX) *HomeRepository {
	return &HomeRepository{db: db}
}

func (r *HomeRepository) Stats(ctx context.Context) (model.HomeStats, error) {
	var stats model.HomeStats
	var err error

	if stats.Productos, err = countRows(ctx, r.db, "productos"); err != nil {
		return model.HomeStats{}, err
	}
	if stats.Proveedores, err = countRows(ctx, r.db, "proveedores"); err != nil {
		return model.HomeStats{}, err
	}
	if stats.Almacenes, err = countRows(ctx, r.db, "almacenes"); err != nil {
		return model.HomeStats{}, err
	}
	if stats.Inventario, err = countRows(ctx, r.db, "conteos_inventario"); err != nil {
		return model.HomeStats{}, err
	}

	return stats, nil
}
