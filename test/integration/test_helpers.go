//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"restaurant-inventory/internal/app"
	"restaurant-inventory/internal/config"
	"restaurant-inventory/internal/database"
)

const (
	adminUsername = "admin"
	adminPassword = "admin-password-123"
	testSecret    = "integration-secret-with-at-least-32-bytes"
)

// startPostgres runs a throwaway PostgreSQL container with the schema applied.
func startPostgres(t *testing.T) *database.DB {
	t.Helper()

	ctx := context.Background()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		t.Skip("docker not available, skipping integration tests")
	}
	_ = provider.Close()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("inventory_test"),
		postgres.WithUsername("inventory"),
		postgres.WithPassword("inventory_test_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(cleanupCtx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(ctx, connStr, 5, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     -1,
		AuthRateLimitRPM: -1,
	}
	cfg.Server.RequestTimeout = 10 * time.Second
	cfg.Auth = config.AuthConfig{
		JWTSecret:    testSecret,
		JWTAlgorithm: "HS256",
		AccessTTL:    15 * time.Minute,
		RefreshTTL:   24 * time.Hour,
		BcryptCost:   4,
	}
	cfg.Bootstrap = config.BootstrapConfig{
		AdminUsername: adminUsername,
		AdminEmail:    "admin@example.com",
		AdminPassword: adminPassword,
	}
	return cfg
}

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

// newAuthedServer serves the fully wired application over db and logs in as the bootstrap admin.
func newAuthedServer(t *testing.T, db *database.DB) *apiClient {
	t.Helper()

	h, err := app.NewHandler(context.Background(), testConfig(), db)
	require.NoError(t, err)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	c := &apiClient{t: t, server: server}

	resp := c.do(http.MethodPost, "/users/login", map[string]string{
		"username": adminUsername,
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeBody(t, resp, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	c.token = tokens.AccessToken

	return c
}

func (c *apiClient) do(method, path string, payload any) *http.Response {
	c.t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.server.URL+path, body)
	require.NoError(c.t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// create posts payload and returns the id of the new row.
func (c *apiClient) create(path string, payload any) int64 {
	c.t.Helper()

	resp := c.do(http.MethodPost, path, payload)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, "POST %s", path)

	var out struct {
		ID int64 `json:"id"`
	}
	decodeBody(c.t, resp, &out)
	require.Positive(c.t, out.ID)
	return out.ID
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	return body.Detail
}
