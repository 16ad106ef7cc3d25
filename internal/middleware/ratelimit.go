package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimitMiddleware applies a per-IP sliding-window limit, used on the
// auth endpoints to slow down credential stuffing.
type RateLimitMiddleware struct {
	requests map[string][]int64 // IP -> request timestamps
	mu       sync.Mutex
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware() *RateLimitMiddleware {
	return &RateLimitMiddleware{
		requests: make(map[string][]int64),
	}
}

// RateLimit limits each client IP to maxRequests per window.
func (m *RateLimitMiddleware) RateLimit(maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := clientIP(r)
			windowStart := time.Now().Add(-window).Unix()

			m.mu.Lock()
			kept := m.requests[clientIP][:0]
			for _, ts := range m.requests[clientIP] {
				if ts >= windowStart {
					kept = append(kept, ts)
				}
			}
			m.requests[clientIP] = kept

			if len(kept) >= maxRequests {
				m.mu.Unlock()
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			m.requests[clientIP] = append(kept, time.Now().Unix())
			m.mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client IP, honoring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	ip := r.RemoteAddr
	if colon := strings.LastIndex(ip, ":"); colon != -1 {
		ip = ip[:colon]
	}
	return ip
}
