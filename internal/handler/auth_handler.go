package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/model"
	"restaurant-inventory/pkg/apierror"
)

const refreshCookieName = "refresh_token"

type authService interface {
	Login(ctx context.Context, username string, password string) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	CurrentUser(ctx context.Context, username string) (model.User, error)
}

type loginRecorder interface {
	ObserveLogin(result string)
}

// CookieConfig controls the refresh_token cookie set on login and refresh.
type CookieConfig struct {
	Secure bool
	Path   string
}

type AuthHandler struct {
	service   authService
	metrics   loginRecorder
	cookie    CookieConfig
	validator *requestValidator
	now       func() time.Time
}

func NewAuthHandler(service authService, metrics loginRecorder, cookie CookieConfig) *AuthHandler {
	if cookie.Path == "" {
		cookie.Path = "/users"
	}
	return &AuthHandler{
		service:   service,
		metrics:   metrics,
		cookie:    cookie,
		validator: newRequestValidator(),
		now:       time.Now,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if err := decodeAndValidate(r, h.validator, &payload); err != nil {
		writeError(w, err)
		return
	}

	pair, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		h.observeLogin(err)
		writeError(w, err)
		return
	}
	h.observeLogin(nil)

	h.setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, pair)
}

// Refresh takes the refresh token from the cookie, falling back to a JSON body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		token = strings.TrimSpace(cookie.Value)
	}

	if token == "" {
		var payload model.RefreshRequest
		defer r.Body.Close()
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&payload)
		if err != nil && !errors.Is(err, io.EOF) {
			writeError(w, badRequest("invalid JSON body", ""))
			return
		}
		token = strings.TrimSpace(payload.RefreshToken)
	}

	if token == "" {
		writeError(w, apierror.Unauthenticated("invalid or expired token"))
		return
	}

	pair, err := h.service.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, pair)
}

// Logout only clears the cookie; issued tokens stay valid until they expire.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     h.cookie.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Sesión cerrada"})
}

func (h *AuthHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("unauthorized"))
		return
	}

	user, err := h.service.CurrentUser(r.Context(), id.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, pair model.TokenPair) {
	maxAge := int(pair.RefreshExpiresAt.Sub(h.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    pair.RefreshToken,
		Path:     h.cookie.Path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) observeLogin(err error) {
	if h.metrics == nil {
		return
	}

	var apiErr *apierror.APIError
	switch {
	case err == nil:
		h.metrics.ObserveLogin("success")
	case errors.As(err, &apiErr):
		h.metrics.ObserveLogin("failure")
	default:
		h.metrics.ObserveLogin("error")
	}
}
