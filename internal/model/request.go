package model

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// Page is the skip/limit window applied to every list query.
type Page struct {
	Skip  int
	Limit int
}

type CategoriaInput struct {
	Nombre      string  `json:"nombre" validate:"required,max=100"`
	Tipo        string  `json:"tipo" validate:"required,oneof=INGREDIENTE BEBIDA UTENSILIO MOBILIARIO LIMPIEZA OFICINA PICNIC DECORACION UNIFORME"`
	Descripcion *string `json:"descripcion"`
}

func (in CategoriaInput) Categoria(id int64) Categoria {
	return Categoria{ID: id, Nombre: in.Nombre, Tipo: in.Tipo, Descripcion: in.Descripcion}
}

type CategoriaFilter struct {
	Tipo *string
}

type ProductoInput struct {
	Nombre        string   `json:"nombre" validate:"required,max=100"`
	Descripcion   *string  `json:"descripcion"`
	CategoriaID   int64    `json:"categoria_id" validate:"required,gt=0"`
	TipoPerecible *string  `json:"tipo_perecible" validate:"omitempty,oneof=PERECEDERO NO_PERECEDERO"`
	StockMinimo   *int     `json:"stock_minimo" validate:"omitempty,min=0"`
	Unidad        *string  `json:"unidad" validate:"omitempty,max=20"`
	Precio        *float64 `json:"precio" validate:"omitempty,min=0"`
	Activo        *bool    `json:"activo"`
}

func (in ProductoInput) Producto(id int64) Producto {
	p := Producto{
		ID:            id,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CategoriaID:   in.CategoriaID,
		TipoPerecible: in.TipoPerecible,
		Unidad:        in.Unidad,
		Precio:        in.Precio,
		Activo:        true,
	}
	if in.StockMinimo != nil {
		p.StockMinimo = *in.StockMinimo
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	return p
}

type ProductoFilter struct {
	CategoriaID   *int64
	TipoPerecible *string
	Activo        *bool
}

type ProveedorInput struct {
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	PersonaContacto *string `json:"persona_contacto" validate:"omitempty,max=100"`
	Correo          *string `json:"correo" validate:"omitempty,email,max=100"`
	Telefono        *string `json:"telefono" validate:"omitempty,max=20"`
	Direccion       *string `json:"direccion"`
}

func (in ProveedorInput) Proveedor(id int64) Proveedor {
	return Proveedor{
		ID:              id,
		Nombre:          in.Nombre,
		PersonaContacto: in.PersonaContacto,
		Correo:          in.Correo,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
	}
}

type ProductoProveedorInput struct {
	ProveedorID         int64    `json:"proveedor_id" validate:"required,gt=0"`
	ProductoID          int64    `json:"producto_id" validate:"required,gt=0"`
	Precio              *float64 `json:"precio" validate:"omitempty,min=0"`
	CantidadMinimaOrden *int     `json:"cantidad_minima_orden" validate:"omitempty,min=0"`
	TiempoEntregaDias   *int     `json:"tiempo_entrega_dias" validate:"omitempty,min=0"`
}

func (in ProductoProveedorInput) ProductoProveedor(id int64) ProductoProveedor {
	return ProductoProveedor{
		ID:                  id,
		ProveedorID:         in.ProveedorID,
		ProductoID:          in.ProductoID,
		Precio:              in.Precio,
		CantidadMinimaOrden: in.CantidadMinimaOrden,
		TiempoEntregaDias:   in.TiempoEntregaDias,
	}
}

type ProductoProveedorFilter struct {
	ProveedorID *int64
	ProductoID  *int64
}

type AlmacenInput struct {
	Nombre           string   `json:"nombre" validate:"required,max=100"`
	Tipo             string   `json:"tipo" validate:"required,max=50"`
	RangoTemperatura *string  `json:"rango_temperatura" validate:"omitempty,max=50"`
	Capacidad        *float64 `json:"capacidad" validate:"required,min=0"`
	UsoActual        *float64 `json:"uso_actual" validate:"omitempty,min=0"`
}

func (in AlmacenInput) Almacen(id int64) Almacen {
	a := Almacen{ID: id, Nombre: in.Nombre, Tipo: in.Tipo, RangoTemperatura: in.RangoTemperatura}
	if in.Capacidad != nil {
		a.Capacidad = *in.Capacidad
	}
	if in.UsoActual != nil {
		a.UsoActual = *in.UsoActual
	}
	return a
}

type AlmacenFilter struct {
	Tipo *string
}

type MovimientoInput struct {
	ProductoID       int64    `json:"producto_id" validate:"required,gt=0"`
	Cantidad         *float64 `json:"cantidad" validate:"required,gt=0"`
	TipoMovimiento   string   `json:"tipo_movimiento" validate:"required,oneof=entrada salida"`
	NumeroReferencia *string  `json:"numero_referencia" validate:"omitempty,max=50"`
	Notas            *string  `json:"notas"`
}

func (in MovimientoInput) Movimiento(id int64) MovimientoInventario {
	m := MovimientoInventario{
		ID:               id,
		ProductoID:       in.ProductoID,
		TipoMovimiento:   in.TipoMovimiento,
		NumeroReferencia: in.NumeroReferencia,
		Notas:            in.Notas,
	}
	if in.Cantidad != nil {
		m.Cantidad = *in.Cantidad
	}
	return m
}

type MovimientoFilter struct {
	ProductoID     *int64
	TipoMovimiento *string
}

type ConteoInput struct {
	ProductoID  int64    `json:"producto_id" validate:"required,gt=0"`
	AlmacenID   int64    `json:"almacen_id" validate:"required,gt=0"`
	Cantidad    *float64 `json:"cantidad" validate:"required,min=0"`
	Responsable string   `json:"responsable" validate:"required,max=100"`
}

func (in ConteoInput) Conteo(id int64) ConteoInventario {
	c := ConteoInventario{ID: id, ProductoID: in.ProductoID, AlmacenID: in.AlmacenID, Responsable: in.Responsable}
	if in.Cantidad != nil {
		c.Cantidad = *in.Cantidad
	}
	return c
}

type ConteoFilter struct {
	ProductoID *int64
	AlmacenID  *int64
}
