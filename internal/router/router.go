package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-inventory/internal/config"
	"restaurant-inventory/internal/handler"
	"restaurant-inventory/internal/metrics"
	"restaurant-inventory/internal/middleware"
)

type Handlers struct {
	Auth              *handler.AuthHandler
	User              *handler.UserHandler
	Categoria         *handler.CategoriaHandler
	Producto          *handler.ProductoHandler
	Proveedor         *handler.ProveedorHandler
	ProductoProveedor *handler.ProductoProveedorHandler
	Almacen           *handler.AlmacenHandler
	Movimiento        *handler.MovimientoHandler
	Conteo            *handler.ConteoHandler
	Home              *handler.HomeHandler
	Health            *handler.HealthHandler
	Docs              *handler.DocsHandler
}

// New builds the HTTP surface. The auth gate is the last global stage, so
// every route below it is protected unless its path is allow-listed.
func New(cfg *config.Config, gate *middleware.AuthGate, m *metrics.Metrics, h Handlers) (http.Handler, error) {
	proxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM,
		middleware.NewClientIPResolver(proxies))

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(gate.Handler)

	r.Get("/health", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/openapi.json", h.Docs.OpenAPI)
	r.Get("/docs", h.Docs.SwaggerUI)

	r.Route("/users", func(users chi.Router) {
		users.Post("/login", h.Auth.Login)
		users.Post("/refresh", h.Auth.Refresh)
		users.Post("/logout", h.Auth.Logout)
		users.Get("/user-info", h.Auth.UserInfo)
		users.Post("/", h.User.Create)
		users.Get("/{id}", h.User.Get)
		users.Put("/{id}", h.User.Update)
		users.Delete("/{id}", h.User.Delete)
	})

	handler.Mount(r, "/categorias", h.Categoria)
	handler.Mount(r, "/productos", h.Producto)
	handler.Mount(r, "/proveedores", h.Proveedor)
	handler.Mount(r, "/productos_proveedor", h.ProductoProveedor)
	handler.Mount(r, "/almacenes", h.Almacen)
	handler.Mount(r, "/movimientos_inventario", h.Movimiento)
	handler.Mount(r, "/conteos_inventario", h.Conteo)

	r.Get("/home", h.Home.Summary)
	r.Get("/home/", h.Home.Summary)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"detail":"Method Not Allowed"}`))
	})

	return r, nil
}
