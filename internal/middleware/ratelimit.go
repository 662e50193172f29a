package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultGeneralRPM = 300
	defaultAuthRPM    = 20

	gcThreshold       = 1000
	defaultMaxClients = 10000
	idleClientTTL     = 10 * time.Minute
)

// authPaths get the stricter credential-guessing budget.
var authPaths = []string{"/users/login", "/users/refresh"}

type clientLimiter struct {
	general  *rate.Limiter
	auth     *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket pair per client IP, as resolved
// by clientIPs. A zero rpm selects the default; a negative one disables that
// bucket. At most maxClients buckets are held.
type RateLimitMiddleware struct {
	generalRPM int
	authRPM    int
	clientIPs  *ClientIPResolver
	maxClients int
	mu         sync.Mutex
	clients    map[string]*clientLimiter
}

func NewRateLimitMiddleware(generalRPM int, authRPM int, clientIPs *ClientIPResolver) *RateLimitMiddleware {
	if generalRPM == 0 {
		generalRPM = defaultGeneralRPM
	}
	if authRPM == 0 {
		authRPM = defaultAuthRPM
	}

	return &RateLimitMiddleware{
		generalRPM: generalRPM,
		authRPM:    authRPM,
		clientIPs:  clientIPs,
		maxClients: defaultMaxClients,
		clients:    map[string]*clientLimiter{},
	}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		limiter := m.getLimiter(m.clientIPs.ClientIP(r))

		target := limiter.general
		if isAuthPath(r.URL.Path) {
			target = limiter.auth
		}

		if !target.Allow() {
			w.Header().Set("Retry-After", "60")
			writeDetail(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAuthPath(path string) bool {
	path = strings.TrimSuffix(strings.ToLower(path), "/")
	for _, p := range authPaths {
		if path == p {
			return true
		}
	}
	return false
}

func newLimiter(rpm int) *rate.Limiter {
	if rpm < 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)
}

func (m *RateLimitMiddleware) getLimiter(clientIP string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if limiter, exists := m.clients[clientIP]; exists {
		limiter.lastSeen = now
		return limiter
	}

	if len(m.clients) >= gcThreshold {
		m.gcLocked(now)
	}
	if len(m.clients) >= m.maxClients {
		m.evictOldestLocked()
	}

	created := &clientLimiter{
		general:  newLimiter(m.generalRPM),
		auth:     newLimiter(m.authRPM),
		lastSeen: now,
	}
	m.clients[clientIP] = created

	return created
}

func (m *RateLimitMiddleware) gcLocked(now time.Time) {
	cutoff := now.Add(-idleClientTTL)
	for ip, limiter := range m.clients {
		if limiter.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}

func (m *RateLimitMiddleware) evictOldestLocked() {
	var (
		oldestIP   string
		oldestSeen time.Time
	)
	for ip, limiter := range m.clients {
		if oldestIP == "" || limiter.lastSeen.Before(oldestSeen) {
			oldestIP, oldestSeen = ip, limiter.lastSeen
		}
	}
	delete(m.clients, oldestIP)
}
