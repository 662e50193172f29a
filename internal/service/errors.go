package service

import (
	"context"
	"errors"

	"restaurant-inventory/internal/model"
	"restaurant-inventory/internal/repository"
	"restaurant-inventory/pkg/apierror"
)

// mapStoreError turns repository sentinels into client-facing API errors.
// Anything unrecognised is returned as-is and ends up as a 500.
func mapStoreError(err error, notFound string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrNotFound) {
		return apierror.NotFound(notFound)
	}

	var ce *repository.ConstraintError
	if errors.As(err, &ce) {
		switch {
		case ce.IsUnique():
			return apierror.Validation("El registro ya existe", ce.Constraint)
		case ce.IsForeignKey():
			return apierror.Validation("El registro hace referencia a datos inexistentes o está siendo referenciado", ce.Constraint)
		default:
			return apierror.Validation("Los datos no cumplen las restricciones", ce.Constraint)
		}
	}

	return err
}

type existsFunc func(ctx context.Context, id int64) (bool, error)

// reference is a parent row a write depends on.
type reference struct {
	id      int64
	exists  existsFunc
	message string
}

// requireReferences fails with a validation error for the first missing parent.
func requireReferences(ctx context.Context, refs ...reference) error {
	for _, ref := range refs {
		found, err := ref.exists(ctx, ref.id)
		if err != nil {
			return err
		}
		if !found {
			return apierror.Validation(ref.message, "")
		}
	}
	return nil
}
