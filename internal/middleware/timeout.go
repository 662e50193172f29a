package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"detail":"request timed out"}`

// Timeout answers 503 with a JSON body once the deadline passes. Handlers
// that finish in time replace the preset content type with their own.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return func(next http.Handler) http.Handler {
		bounded := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			bounded.ServeHTTP(w, r)
		})
	}
}
