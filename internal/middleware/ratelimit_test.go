package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_UnlimitedGeneral(t *testing.T) {
	handler := NewRateLimitMiddleware(-1, 1, nil).Handler(okHandler())

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categorias/", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddleware_LimitedAuth(t *testing.T) {
	handler := NewRateLimitMiddleware(-1, 1, nil).Handler(okHandler())

	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, httptest.NewRequest(http.MethodPost, "/users/login", nil))
	assert.Equal(t, http.StatusOK, rec1.Code)

	// burst of 1 is spent by the first request
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodPost, "/users/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
	assert.Equal(t, "60", rec2.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"detail":"too many requests"}`, rec2.Body.String())

	// the refresh endpoint shares the auth bucket
	rec3 := httptest.NewRecorder()
	handler.ServeHTTP(rec3, httptest.NewRequest(http.MethodPost, "/users/refresh", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec3.Code)

	// other clients are unaffected
	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	req.RemoteAddr = "10.0.0.9:5000"
	rec4 := httptest.NewRecorder()
	handler.ServeHTTP(rec4, req)
	assert.Equal(t, http.StatusOK, rec4.Code)
}

func TestRateLimitMiddleware_Configuration(t *testing.T) {
	mw := NewRateLimitMiddleware(0, 0, nil)
	assert.Equal(t, defaultGeneralRPM, mw.generalRPM)
	assert.Equal(t, defaultAuthRPM, mw.authRPM)

	mw = NewRateLimitMiddleware(-1, 5, nil)
	assert.Equal(t, -1, mw.generalRPM)
	assert.Equal(t, 5, mw.authRPM)
}

func TestRateLimitMiddleware_IgnoresSpoofedForwardedFor(t *testing.T) {
	mw := NewRateLimitMiddleware(-1, 20, nil)
	handler := mw.Handler(okHandler())

	allowed, blocked := 0, 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.RemoteAddr = "203.0.113.9:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		switch rec.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			blocked++
		}
	}

	assert.Equal(t, 20, allowed)
	assert.Equal(t, 80, blocked)
	assert.Len(t, mw.clients, 1)
}

func TestRateLimitMiddleware_TrustedProxyForwardsClient(t *testing.T) {
	resolver := NewClientIPResolver([]netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")})
	handler := NewRateLimitMiddleware(-1, 1, resolver).Handler(okHandler())

	login := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.RemoteAddr = "10.0.0.2:443"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, login("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, login("198.51.100.1"))
	assert.Equal(t, http.StatusOK, login("198.51.100.2"))
}

func TestRateLimitMiddleware_ClientCap(t *testing.T) {
	mw := NewRateLimitMiddleware(-1, -1, nil)
	mw.maxClients = 3
	handler := mw.Handler(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/categorias/", nil)
		req.RemoteAddr = fmt.Sprintf("192.0.2.%d:1234", i)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.LessOrEqual(t, len(mw.clients), 3)
	}

	assert.Contains(t, mw.clients, "192.0.2.9")
}

func TestClientIPResolver(t *testing.T) {
	trusted := NewClientIPResolver([]netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.0.2.1/32"),
	})

	tests := []struct {
		name     string
		resolver *ClientIPResolver
		remote   string
		xff      string
		realIP   string
		want     string
	}{
		{name: "no proxies uses peer", resolver: nil, remote: "192.0.2.1:1234", xff: "203.0.113.5", realIP: "198.51.100.7", want: "192.0.2.1"},
		{name: "untrusted peer ignores headers", resolver: trusted, remote: "198.51.100.20:1234", xff: "203.0.113.5", want: "198.51.100.20"},
		{name: "trusted peer reads rightmost untrusted hop", resolver: trusted, remote: "192.0.2.1:1234", xff: "1.1.1.1, 203.0.113.5, 10.0.0.7", want: "203.0.113.5"},
		{name: "trusted peer falls back to real ip", resolver: trusted, remote: "10.1.2.3:80", realIP: "198.51.100.7", want: "198.51.100.7"},
		{name: "trusted peer without headers", resolver: trusted, remote: "10.1.2.3:80", want: "10.1.2.3"},
		{name: "ipv4 mapped peer", resolver: nil, remote: "[::ffff:192.0.2.44]:80", want: "192.0.2.44"},
		{name: "unparseable remote", resolver: trusted, remote: "pipe", want: "pipe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			assert.Equal(t, tc.want, tc.resolver.ClientIP(req))
		})
	}
}
