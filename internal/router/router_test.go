package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/internal/config"
	"restaurant-inventory/internal/docs"
	"restaurant-inventory/internal/handler"
	"restaurant-inventory/internal/metrics"
	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/model"
	"restaurant-inventory/internal/security"
	"restaurant-inventory/internal/service"
)

const routerSecret = "router-test-secret-router-test-secret"

type memUsers struct {
	mu    sync.Mutex
	users []model.User
}

func (m *memUsers) FindByID(_ context.Context, id int64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = int64(len(m.users) + 1)
	u.CreatedAt = time.Now().UTC()
	m.users = append(m.users, u)
	return u, nil
}

func (m *memUsers) Update(_ context.Context, id int64, upd model.UserUpdate, now time.Time) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			if upd.Email != nil {
				u.Email = *upd.Email
			}
			u.UpdatedAt = &now
			m.users[i] = u
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type memCategorias struct {
	items map[int64]model.Categoria
}

func (m *memCategorias) List(context.Context, model.CategoriaFilter, model.Page) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategorias) Get(_ context.Context, id int64) (model.Categoria, error) {
	c, ok := m.items[id]
	if !ok {
		return model.Categoria{}, model.ErrNotFound
	}
	return c, nil
}

func (m *memCategorias) Create(_ context.Context, c model.Categoria) (model.Categoria, error) {
	c.ID = int64(len(m.items) + 1)
	m.items[c.ID] = c
	return c, nil
}

func (m *memCategorias) Update(_ context.Context, c model.Categoria) (model.Categoria, error) {
	if _, ok := m.items[c.ID]; !ok {
		return model.Categoria{}, model.ErrNotFound
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *memCategorias) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memCategorias) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

type memProductos struct {
	items []model.Producto
}

func (m *memProductos) List(context.Context, model.ProductoFilter, model.Page) ([]model.Producto, error) {
	return m.items, nil
}

func (m *memProductos) Get(_ context.Context, id int64) (model.Producto, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Producto{}, model.ErrNotFound
}

func (m *memProductos) Create(_ context.Context, p model.Producto) (model.Producto, error) {
	p.ID = int64(len(m.items) + 1)
	m.items = append(m.items, p)
	return p, nil
}

func (m *memProductos) Update(_ context.Context, p model.Producto) (model.Producto, error) {
	return p, nil
}

func (m *memProductos) Delete(context.Context, int64) error {
	return nil
}

type stubPinger struct{ err error }

func (s stubPinger) Health(context.Context) error { return s.err }

type fixture struct {
	handler    http.Handler
	tokens     *security.TokenService
	categorias *memCategorias
	productos  *memProductos
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hasher, err := security.NewPasswordHasher(4)
	require.NoError(t, err)
	tokens, err := security.NewTokenService(security.TokenConfig{Secret: routerSecret})
	require.NoError(t, err)

	users := &memUsers{}
	userService := service.NewUserService(users, hasher)
	_, err = userService.Create(context.Background(), model.CreateUserRequest{
		Username: "alice", Email: "alice@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	categorias := &memCategorias{items: map[int64]model.Categoria{
		1: {ID: 1, Nombre: "Lácteos", Tipo: "INGREDIENTE"},
	}}
	productos := &memProductos{}

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	cfg := &config.Config{
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     -1,
		AuthRateLimitRPM: -1,
	}
	cfg.Server.RequestTimeout = 5 * time.Second

	h, err := New(cfg, middleware.NewAuthGate(tokens, middleware.DefaultAllowList(), m), m, Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(users, hasher, tokens), m, handler.CookieConfig{Secure: true}),
		User:      handler.NewUserHandler(userService),
		Categoria: handler.NewCategoriaHandler(service.NewCategoriaService(categorias)),
		Producto:  handler.NewProductoHandler(service.NewProductoService(productos, categorias)),
		Health:    handler.NewHealthHandler(stubPinger{}),
		Docs:      handler.NewDocsHandler(docs.OpenAPI),
	})
	require.NoError(t, err)

	return &fixture{handler: h, tokens: tokens, categorias: categorias, productos: productos}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) login(t *testing.T) model.TokenPair {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/users/login", "", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair model.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	return pair
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/users/login", "", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["refresh_token"])

	cookie := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, "refresh_token="), cookie)
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "Secure")
}

func TestLoginFailureIsUniform(t *testing.T) {
	f := newFixture(t)

	for _, creds := range []map[string]string{
		{"username": "alice", "password": "wrong-password"},
		{"username": "mallory", "password": "correct-horse"},
	} {
		rec := f.do(t, http.MethodPost, "/users/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail":"incorrect username or password"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/categorias/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"unauthorized"}`, rec.Body.String())
}

func TestCategoriaNotFound(t *testing.T) {
	f := newFixture(t)
	pair := f.login(t)

	rec := f.do(t, http.MethodGet, "/categorias/999", pair.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Categoría no encontrada"}`, rec.Body.String())
}

func TestProductoWithUnknownCategoria(t *testing.T) {
	f := newFixture(t)
	pair := f.login(t)

	rec := f.do(t, http.MethodPost, "/productos/", pair.AccessToken, map[string]any{
		"nombre": "Queso", "categoria_id": 9999,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"La categoría especificada no existe"}`, rec.Body.String())
	assert.Empty(t, f.productos.items)

	rec = f.do(t, http.MethodPost, "/productos/", pair.AccessToken, map[string]any{
		"nombre": "Queso", "categoria_id": 1,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, f.productos.items, 1)
}

func TestCategoriaCRUD(t *testing.T) {
	f := newFixture(t)
	token := f.login(t).AccessToken

	rec := f.do(t, http.MethodPost, "/categorias", token, map[string]any{"nombre": "Bebidas frías", "tipo": "BEBIDA"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Categoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(t, http.MethodPut, "/categorias/2", token, map[string]any{"nombre": "Bebidas", "tipo": "BEBIDA"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/categorias/2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mensaje":"Categoría eliminada exitosamente"}`, rec.Body.String())

	rec = f.do(t, http.MethodDelete, "/categorias/2", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrors(t *testing.T) {
	f := newFixture(t)
	token := f.login(t).AccessToken

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "bad enum", method: http.MethodPost, path: "/categorias/", body: map[string]any{"nombre": "X", "tipo": "JUGUETE"}},
		{name: "missing field", method: http.MethodPost, path: "/categorias/", body: map[string]any{"tipo": "BEBIDA"}},
		{name: "unknown field", method: http.MethodPost, path: "/categorias/", body: map[string]any{"nombre": "X", "tipo": "BEBIDA", "id": 5}},
		{name: "non-numeric id", method: http.MethodGet, path: "/categorias/abc"},
		{name: "bad skip", method: http.MethodGet, path: "/categorias/?skip=-1"},
		{name: "bad filter", method: http.MethodGet, path: "/productos/?activo=maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.path, token, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body model.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestRefreshFlow(t *testing.T) {
	f := newFixture(t)
	pair := f.login(t)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: pair.RefreshToken})
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "refresh_token=")
	})

	t.Run("body", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/users/refresh", "", map[string]string{"refresh_token": pair.RefreshToken})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/users/refresh", "", map[string]string{"refresh_token": pair.AccessToken})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/users/refresh", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token is not an API credential", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/categorias/", pair.RefreshToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserInfo(t *testing.T) {
	f := newFixture(t)
	token := f.login(t).AccessToken

	rec := f.do(t, http.MethodGet, "/users/user-info", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "PasswordHash")
}

func TestOperationalEndpointsArePublic(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/health", "/health/ready", "/openapi.json", "/docs", "/metrics"} {
		rec := f.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := f.do(t, http.MethodGet, "/openapi.json", "", nil)
	assert.True(t, json.Valid(rec.Body.Bytes()))
}

func TestExpiredAccessToken(t *testing.T) {
	f := newFixture(t)

	past := f.tokens.WithClock(func() time.Time { return time.Now().Add(-time.Hour) })
	token, err := past.IssueAccess("alice")
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/categorias/1", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"invalid or expired token"}`, rec.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	f := newFixture(t)
	token := f.login(t).AccessToken

	rec := f.do(t, http.MethodPost, "/users/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/users/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
