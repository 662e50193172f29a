package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant-inventory/internal/config"
	"restaurant-inventory/internal/database"
	"restaurant-inventory/internal/docs"
	"restaurant-inventory/internal/handler"
	"restaurant-inventory/internal/metrics"
	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/repository"
	"restaurant-inventory/internal/router"
	"restaurant-inventory/internal/security"
	"restaurant-inventory/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	slog.Info("connecting to PostgreSQL")
	db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}
	slog.Info("database ready")

	appRouter, err := NewHandler(ctx, cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			db.Close,
		},
	}, nil
}

// NewHandler wires repositories, services and handlers over db into the
// routed HTTP handler. It also seeds the bootstrap admin when configured.
func NewHandler(ctx context.Context, cfg *config.Config, db *database.DB) (http.Handler, error) {
	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	categoriaRepo := repository.NewCategoriaRepository(pool)
	productoRepo := repository.NewProductoRepository(pool)
	proveedorRepo := repository.NewProveedorRepository(pool)
	productoProveedorRepo := repository.NewProductoProveedorRepository(pool)
	almacenRepo := repository.NewAlmacenRepository(pool)
	movimientoRepo := repository.NewMovimientoRepository(pool)
	conteoRepo := repository.NewConteoRepository(pool)
	homeRepo := repository.NewHomeRepository(pool)

	hasher, err := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		Algorithm:  cfg.Auth.JWTAlgorithm,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, hasher)

	if cfg.Bootstrap.Enabled() {
		if err := userService.EnsureBootstrapAdmin(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to bootstrap admin user: %w", err)
		}
	}

	m := metrics.New()
	m.RegisterPool(db.Pool)

	gate := middleware.NewAuthGate(tokens, middleware.DefaultAllowList(), m)

	appRouter, err := router.New(cfg, gate, m, router.Handlers{
		Auth:              handler.NewAuthHandler(authService, m, handler.CookieConfig{Secure: cfg.Auth.RefreshCookieSecure}),
		User:              handler.NewUserHandler(userService),
		Categoria:         handler.NewCategoriaHandler(service.NewCategoriaService(categoriaRepo)),
		Producto:          handler.NewProductoHandler(service.NewProductoService(productoRepo, categoriaRepo)),
		Proveedor:         handler.NewProveedorHandler(service.NewProveedorService(proveedorRepo)),
		ProductoProveedor: handler.NewProductoProveedorHandler(service.NewProductoProveedorService(productoProveedorRepo, proveedorRepo, productoRepo)),
		Almacen:           handler.NewAlmacenHandler(service.NewAlmacenService(almacenRepo)),
		Movimiento:        handler.NewMovimientoHandler(service.NewMovimientoService(movimientoRepo, productoRepo)),
		Conteo:            handler.NewConteoHandler(service.NewConteoService(conteoRepo, productoRepo, almacenRepo)),
		Home:              handler.NewHomeHandler(service.NewHomeService(homeRepo)),
		Health:            handler.NewHealthHandler(db),
		Docs:              handler.NewDocsHandler(docs.OpenAPI),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	return appRouter, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests before closing the database.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr, "host", config.Hostname())
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.cleanup()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.cleanup()
	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func (a *App) cleanup() {
	for _, fn := range a.cleanupFuncs {
		fn()
	}
}
