package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS answers pre-flight requests before the auth gate sees them. Credentials
// are only allowed for explicit origins since the refresh cookie rides on them.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	wildcard := false
	for _, origin := range origins {
		if origin == "*" {
			wildcard = true
			break
		}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "WWW-Authenticate"},
		MaxAge:           3600,
		AllowCredentials: !wildcard,
	})

	return handler.Handler
}
