package model

import "time"

var CategoriaTipos = []string{
	"INGREDIENTE", "BEBIDA", "UTENSILIO", "MOBILIARIO", "LIMPIEZA",
	"OFICINA", "PICNIC", "DECORACION", "UNIFORME",
}

const (
	Perecedero   = "PERECEDERO"
	NoPerecedero = "NO_PERECEDERO"

	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

type Categoria struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Tipo        string  `json:"tipo"`
	Descripcion *string `json:"descripcion"`
}

type Producto struct {
	ID            int64    `json:"id"`
	Nombre        string   `json:"nombre"`
	Descripcion   *string  `json:"descripcion"`
	CategoriaID   int64    `json:"categoria_id"`
	TipoPerecible *string  `json:"tipo_perecible"`
	StockMinimo   int      `json:"stock_minimo"`
	Unidad        *string  `json:"unidad"`
	Precio        *float64 `json:"precio"`
	Activo        bool     `json:"activo"`
}

type Proveedor struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	PersonaContacto *string `json:"persona_contacto"`
	Correo          *string `json:"correo"`
	Telefono        *string `json:"telefono"`
	Direccion       *string `json:"direccion"`
}

type ProductoProveedor struct {
	ID                  int64    `json:"id"`
	ProveedorID         int64    `json:"proveedor_id"`
	ProductoID          int64    `json:"producto_id"`
	Precio              *float64 `json:"precio"`
	CantidadMinimaOrden *int     `json:"cantidad_minima_orden"`
	TiempoEntregaDias   *int     `json:"tiempo_entrega_dias"`
}

type Almacen struct {
	ID               int64   `json:"id"`
	Nombre           string  `json:"nombre"`
	Tipo             string  `json:"tipo"`
	RangoTemperatura *string `json:"rango_temperatura"`
	Capacidad        float64 `json:"capacidad"`
	UsoActual        float64 `json:"uso_actual"`
}

type MovimientoInventario struct {
	ID               int64     `json:"id"`
	ProductoID       int64     `json:"producto_id"`
	Cantidad         float64   `json:"cantidad"`
	TipoMovimiento   string    `json:"tipo_movimiento"`
	NumeroReferencia *string   `json:"numero_referencia"`
	Notas            *string   `json:"notas"`
	Fecha            time.Time `json:"fecha"`
}

type ConteoInventario struct {
	ID                int64     `json:"id"`
	ProductoID        int64     `json:"producto_id"`
	AlmacenID         int64     `json:"almacen_id"`
	Cantidad          float64   `json:"cantidad"`
	Responsable       string    `json:"responsable"`
	FechaUltimoConteo time.Time `json:"fecha_ultimo_conteo"`
}

type HomeStats struct {
	Productos   int64 `json:"productos"`
	Proveedores int64 `json:"proveedores"`
	Almacenes   int64 `json:"almacenes"`
	Inventario  int64 `json:"inventario"`
}

type DeleteResult struct {
	Mensaje string `json:"mensaje"`
}
