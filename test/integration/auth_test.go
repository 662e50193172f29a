//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlowAgainstPostgres(t *testing.T) {
	db := startPostgres(t)
	c := newAuthedServer(t, db)

	t.Run("user info", func(t *testing.T) {
		resp := c.do(http.MethodGet, "/users/user-info", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user map[string]any
		decodeBody(t, resp, &user)
		assert.Equal(t, adminUsername, user["username"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("wrong password", func(t *testing.T) {
		anon := &apiClient{t: t, server: c.server}
		resp := anon.do(http.MethodPost, "/users/login", map[string]string{"username": adminUsername, "password": "nope-nope"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	})

	t.Run("refresh", func(t *testing.T) {
		anon := &apiClient{t: t, server: c.server}
		resp := anon.do(http.MethodPost, "/users/login", map[string]string{"username": adminUsername, "password": adminPassword})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var pair struct {
			RefreshToken string `json:"refresh_token"`
		}
		decodeBody(t, resp, &pair)

		resp = anon.do(http.MethodPost, "/users/refresh", map[string]string{"refresh_token": pair.RefreshToken})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var next struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		decodeBody(t, resp, &next)
		assert.NotEmpty(t, next.AccessToken)
		assert.Equal(t, "bearer", next.TokenType)
	})

	t.Run("no token", func(t *testing.T) {
		anon := &apiClient{t: t, server: c.server}
		resp := anon.do(http.MethodGet, "/productos/", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUserLifecycleAgainstPostgres(t *testing.T) {
	db := startPostgres(t)
	c := newAuthedServer(t, db)

	payload := map[string]string{"username": "cocina", "email": "Cocina@Example.com", "password": "cocina-password"}

	resp := c.do(http.MethodPost, "/users/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID    int64  `json:"id_user"`
		Email string `json:"email"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "cocina@example.com", created.Email)

	resp = c.do(http.MethodPost, "/users/", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	anon := &apiClient{t: t, server: c.server}
	resp = anon.do(http.MethodPost, "/users/login", map[string]string{"username": "cocina", "password": "cocina-password"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	path := "/users/" + itoa(created.ID)
	resp = c.do(http.MethodPut, path, map[string]string{"password": "otra-password-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = anon.do(http.MethodPost, "/users/login", map[string]string{"username": "cocina", "password": "cocina-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = c.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
