// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// visitor holds the recent request times for one client address.
type visitor struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter enforces a sliding-window request limit per client address.
// Intended for the login endpoint, where brute forcing is the concern.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

// NewRateLimiter returns a limiter allowing limit requests per window for
// each client address. A background janitor drops idle visitors so the map
// does not grow without bound.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) visitor(ip string) *visitor {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{}
		rl.visitors[ip] = v
	}
	return v
}

func (rl *RateLimiter) allow(ip string) bool {
	v := rl.visitor(ip)

	v.mu.Lock()
	defer v.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	kept := v.hits[:0]
	for _, t := range v.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	v.hits = kept

	if len(v.hits) >= rl.limit {
		return false
	}
	v.hits = append(v.hits, time.Now())
	return true
}

// cleanup drops visitors with no hits inside the current window.
func (rl *RateLimiter) cleanup() {
	for range time.Tick(rl.window * 2) {
		cutoff := time.Now().Add(-rl.window)

		rl.mu.Lock()
		for ip, v := range rl.visitors {
			v.mu.Lock()
			idle := len(v.hits) == 0 || v.hits[len(v.hits)-1].Before(cutoff)
			v.mu.Unlock()
			if idle {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects over-limit requests with a 429 JSON body and a
// Retry-After hint covering the full window.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too_many_requests"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the client address, trusting proxy headers when set.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
