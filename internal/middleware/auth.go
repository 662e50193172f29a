package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"restaurant-inventory/internal/security"
)

const bearerScheme = "bearer"

type tokenValidator interface {
	Validate(token string) (*security.Claims, error)
}

type rejectionRecorder interface {
	ObserveRejection(reason string)
}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	Subject   string
	TokenType string
	ExpiresAt time.Time
}

type contextKey string

const identityContextKey contextKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

// AllowList declares the requests that skip authentication.
type AllowList struct {
	Methods      map[string]struct{}
	PathPrefixes []string
}

func DefaultAllowList() AllowList {
	return AllowList{
		Methods: map[string]struct{}{http.MethodOptions: {}},
		PathPrefixes: []string{
			"/users/login",
			"/users/refresh",
			"/docs",
			"/openapi.json",
			"/health",
			"/metrics",
		},
	}
}

// Allows reports whether r is exempt. A prefix matches the exact path or
// any path below it, so "/docs" covers "/docs/" but not "/docsx".
func (a AllowList) Allows(r *http.Request) bool {
	if _, ok := a.Methods[r.Method]; ok {
		return true
	}

	path := r.URL.Path
	for _, prefix := range a.PathPrefixes {
		if path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/") {
			return true
		}
	}
	return false
}

type AuthGate struct {
	tokens  tokenValidator
	allow   AllowList
	metrics rejectionRecorder
}

func NewAuthGate(tokens tokenValidator, allow AllowList, metrics rejectionRecorder) *AuthGate {
	return &AuthGate{tokens: tokens, allow: allow, metrics: metrics}
}

func (g *AuthGate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.allow.Allows(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			g.reject(w, "missing_token", "unauthorized")
			return
		}

		claims, err := g.tokens.Validate(token)
		if err != nil {
			g.reject(w, "invalid_token", "invalid or expired token")
			return
		}
		if claims.IsRefresh() {
			g.reject(w, "refresh_token", "invalid or expired token")
			return
		}

		id := Identity{Subject: claims.Subject, TokenType: claims.Type}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

func (g *AuthGate) reject(w http.ResponseWriter, reason string, detail string) {
	if g.metrics != nil {
		g.metrics.ObserveRejection(reason)
	}
	Challenge(w)
	writeDetail(w, http.StatusUnauthorized, detail)
}

// Challenge sets the bearer challenge every 401 carries.
func Challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
