// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter provides per-IP rate limiting for the public rendering
// surface using fixed windows. Counters for past windows are dropped
// lazily on access, so memory stays bounded by the active client set.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]*windowCount
	limit  int
	window time.Duration
}

type windowCount struct {
	windowStart time.Time
	n           int
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]*windowCount),
		limit:  limit,
		window: window,
	}
}

// allow records a request for the client and reports whether it is within
// the limit for the current window.
func (rl *RateLimiter) allow(client string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	wc, ok := rl.counts[client]
	if !ok || now.Sub(wc.windowStart) >= rl.window {
		// New window; also an opportunity to shed long-idle clients.
		if len(rl.counts) > 10_000 {
			for k, v := range rl.counts {
				if now.Sub(v.windowStart) >= rl.window {
					delete(rl.counts, k)
				}
			}
		}
		rl.counts[client] = &windowCount{windowStart: now, n: 1}
		return true
	}

	wc.n++
	return wc.n <= rl.limit
}

// Handler is the middleware entry point. Requests over the limit get 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !rl.allow(client, time.Now()) {
			w.Header().Set("Retry-After", rl.window.String())
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
