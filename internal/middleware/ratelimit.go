package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/HarshXTrisha/vericheck-pro/pkg/utils"
	"github.com/rs/zerolog"
)

type visitor struct {
	count     int
	resetTime time.Time
}

// RateLimiter enforces a per-client quota over a rolling window. Clients
// are keyed by IP as reported upstream (RealIP middleware runs first, so
// X-Forwarded-For is honored). State is in-memory and process-local.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	logger   zerolog.Logger
}

func NewRateLimiter(limit int, window time.Duration, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		logger:   logger,
	}
}

// Handler rejects requests over the quota with 429 and a retry hint; the
// X-RateLimit headers are set on every response.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		allowed, remaining := rl.allow(ip)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			rl.logger.Warn().Str("ip", ip).Msg("Rate limit exceeded")
			utils.WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"error":      "Rate limit exceeded. Please try again later.",
				"retryAfter": int(rl.window.Seconds()),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop expired entries opportunistically so the map stays bounded.
	for key, v := range rl.visitors {
		if now.After(v.resetTime) {
			delete(rl.visitors, key)
		}
	}

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{count: 1, resetTime: now.Add(rl.window)}
		return true, rl.limit - 1
	}

	if v.count >= rl.limit {
		return false, 0
	}

	v.count++
	return true, rl.limit - v.count
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
