package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/internal/model"
	"restaurant-inventory/internal/repository"
)

// memRows is an in-memory table keyed by id; the per-entity stores below add List.
type memRows[T any] struct {
	rows      map[int64]T
	idOf      func(T) int64
	withID    func(T, int64) T
	writes    int
	deleteErr error
}

func newMemRows[T any](idOf func(T) int64, withID func(T, int64) T) *memRows[T] {
	return &memRows[T]{rows: map[int64]T{}, idOf: idOf, withID: withID}
}

func (m *memRows[T]) Get(_ context.Context, id int64) (T, error) {
	row, ok := m.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get: %w", model.ErrNotFound)
	}
	return row, nil
}

func (m *memRows[T]) Create(_ context.Context, row T) (T, error) {
	m.writes++
	row = m.withID(row, int64(len(m.rows)+1))
	m.rows[m.idOf(row)] = row
	return row, nil
}

func (m *memRows[T]) Update(_ context.Context, row T) (T, error) {
	if _, ok := m.rows[m.idOf(row)]; !ok {
		var zero T
		return zero, fmt.Errorf("update: %w", model.ErrNotFound)
	}
	m.writes++
	m.rows[m.idOf(row)] = row
	return row, nil
}

func (m *memRows[T]) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return fmt.Errorf("delete: %w", model.ErrNotFound)
	}
	delete(m.rows, id)
	return nil
}

type memProveedores struct{ *memRows[model.Proveedor] }

func (m memProveedores) List(context.Context, model.Page) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

type memProductoProveedores struct {
	*memRows[model.ProductoProveedor]
}

func (m memProductoProveedores) List(context.Context, model.ProductoProveedorFilter, model.Page) ([]model.ProductoProveedor, error) {
	return nil, nil
}

type memAlmacenes struct{ *memRows[model.Almacen] }

func (m memAlmacenes) List(context.Context, model.AlmacenFilter, model.Page) ([]model.Almacen, error) {
	return nil, nil
}

type memMovimientos struct {
	*memRows[model.MovimientoInventario]
}

func (m memMovimientos) List(context.Context, model.MovimientoFilter, model.Page) ([]model.MovimientoInventario, error) {
	return nil, nil
}

func newProveedores() memProveedores {
	return memProveedores{newMemRows(
		func(p model.Proveedor) int64 { return p.ID },
		func(p model.Proveedor, id int64) model.Proveedor { p.ID = id; return p },
	)}
}

func newProductoProveedores() memProductoProveedores {
	return memProductoProveedores{newMemRows(
		func(pp model.ProductoProveedor) int64 { return pp.ID },
		func(pp model.ProductoProveedor, id int64) model.ProductoProveedor { pp.ID = id; return pp },
	)}
}

func newAlmacenes() memAlmacenes {
	return memAlmacenes{newMemRows(
		func(a model.Almacen) int64 { return a.ID },
		func(a model.Almacen, id int64) model.Almacen { a.ID = id; return a },
	)}
}

func newMovimientos() memMovimientos {
	return memMovimientos{newMemRows(
		func(m model.MovimientoInventario) int64 { return m.ID },
		func(m model.MovimientoInventario, id int64) model.MovimientoInventario { m.ID = id; return m },
	)}
}

func TestProveedorService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newProveedores()
	svc := NewProveedorService(store)

	created, err := svc.Create(ctx, model.ProveedorInput{Nombre: "Distribuidora Sur", Correo: strPtr("ventas@sur.example")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := svc.Update(ctx, created.ID, model.ProveedorInput{Nombre: "Distribuidora Norte"})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Norte", updated.Nombre)
	assert.Nil(t, updated.Correo)

	list, err := svc.List(ctx, model.Page{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Get(ctx, 77)
	apiErr := requireAPIStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Proveedor no encontrado", apiErr.Message)

	_, err = svc.Update(ctx, 77, model.ProveedorInput{Nombre: "X"})
	requireAPIStatus(t, err, http.StatusNotFound)

	res, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor eliminado exitosamente", res.Mensaje)

	store.deleteErr = &repository.ConstraintError{Op: "delete", Code: "23503", Constraint: "proveedor_productos_proveedor_id_fkey"}
	_, err = svc.Delete(ctx, 2)
	apiErr = requireAPIStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, apiErr.Message, "referenciado")
}

func TestProductoProveedorServiceReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		in      model.ProductoProveedorInput
		message string
	}{
		{
			name:    "unknown proveedor",
			in:      model.ProductoProveedorInput{ProveedorID: 9, ProductoID: 1},
			message: "El proveedor especificado no existe",
		},
		{
			name:    "unknown producto",
			in:      model.ProductoProveedorInput{ProveedorID: 1, ProductoID: 9},
			message: "El producto especificado no existe",
		},
		{
			name:    "both unknown reports proveedor first",
			in:      model.ProductoProveedorInput{ProveedorID: 9, ProductoID: 9},
			message: "El proveedor especificado no existe",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newProductoProveedores()
			svc := NewProductoProveedorService(store, idSet{1: true}, idSet{1: true})

			_, err := svc.Create(ctx, tc.in)
			apiErr := requireAPIStatus(t, err, http.StatusBadRequest)
			assert.Equal(t, tc.message, apiErr.Message)

			_, err = svc.Update(ctx, 1, tc.in)
			apiErr = requireAPIStatus(t, err, http.StatusBadRequest)
			assert.Equal(t, tc.message, apiErr.Message)

			assert.Zero(t, store.writes)
		})
	}

	t.Run("valid references are written", func(t *testing.T) {
		store := newProductoProveedores()
		svc := NewProductoProveedorService(store, idSet{1: true}, idSet{1: true})

		pp, err := svc.Create(ctx, model.ProductoProveedorInput{ProveedorID: 1, ProductoID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), pp.ID)

		_, err = svc.Update(ctx, 5, model.ProductoProveedorInput{ProveedorID: 1, ProductoID: 1})
		apiErr := requireAPIStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "Producto de proveedor no encontrado", apiErr.Message)
	})

	t.Run("lookup failure is surfaced", func(t *testing.T) {
		boom := errors.New("db down")
		store := newProductoProveedores()
		svc := NewProductoProveedorService(store, idSet{1: true}, failingChecker{err: boom})

		_, err := svc.Create(ctx, model.ProductoProveedorInput{ProveedorID: 1, ProductoID: 1})
		require.ErrorIs(t, err, boom)
		assert.Zero(t, store.writes)
	})
}

func TestAlmacenService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newAlmacenes()
	svc := NewAlmacenService(store)

	capacidad := 500.0
	a, err := svc.Create(ctx, model.AlmacenInput{Nombre: "Cámara fría", Tipo: "REFRIGERADO", Capacidad: &capacidad})
	require.NoError(t, err)
	assert.Equal(t, 500.0, a.Capacidad)
	assert.Zero(t, a.UsoActual)

	uso := 120.0
	a, err = svc.Update(ctx, a.ID, model.AlmacenInput{Nombre: "Cámara fría", Tipo: "REFRIGERADO", Capacidad: &capacidad, UsoActual: &uso})
	require.NoError(t, err)
	assert.Equal(t, 120.0, a.UsoActual)

	_, err = svc.Get(ctx, 3)
	apiErr := requireAPIStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Almacén no encontrado", apiErr.Message)

	store.deleteErr = &repository.ConstraintError{Op: "delete", Code: "23503", Constraint: "conteos_inventario_almacen_id_fkey"}
	_, err = svc.Delete(ctx, a.ID)
	requireAPIStatus(t, err, http.StatusBadRequest)

	store.deleteErr = nil
	res, err := svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Almacén eliminado exitosamente", res.Mensaje)
}

func TestMovimientoServiceReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cantidad := 40.0

	store := newMovimientos()
	svc := NewMovimientoService(store, idSet{1: true})

	_, err := svc.Create(ctx, model.MovimientoInput{ProductoID: 404, Cantidad: &cantidad, TipoMovimiento: model.MovimientoEntrada})
	apiErr := requireAPIStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "El producto especificado no existe", apiErr.Message)
	assert.Zero(t, store.writes)

	m, err := svc.Create(ctx, model.MovimientoInput{ProductoID: 1, Cantidad: &cantidad, TipoMovimiento: model.MovimientoEntrada})
	require.NoError(t, err)
	assert.Equal(t, 40.0, m.Cantidad)

	_, err = svc.Update(ctx, m.ID, model.MovimientoInput{ProductoID: 404, Cantidad: &cantidad, TipoMovimiento: model.MovimientoSalida})
	requireAPIStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, 1, store.writes)

	_, err = svc.Get(ctx, 99)
	apiErr = requireAPIStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Movimiento no encontrado", apiErr.Message)

	res, err := svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movimiento eliminado exitosamente", res.Mensaje)
}
