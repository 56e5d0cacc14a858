// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Default rate limit tuning. Legal queries are expensive (retrieval plus
// LLM generation), so the per-client budget is deliberately modest.
const (
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 10
)

// ClientLimiter implements per-client token bucket rate limiting keyed
// by client IP.
type ClientLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewClientLimiter creates a limiter allowing requestsPerSecond sustained
// with the given burst per client. Non-positive inputs fall back to the
// defaults.
func NewClientLimiter(requestsPerSecond float64, burst int) *ClientLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &ClientLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow reports whether the client may proceed without waiting.
func (l *ClientLimiter) Allow(clientKey string) bool {
	return l.getLimiter(clientKey).Allow()
}

// getLimiter returns the limiter for a client, creating one on first use.
func (l *ClientLimiter) getLimiter(clientKey string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[clientKey]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[clientKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[clientKey] = limiter
	return limiter
}

// RateLimitMiddleware creates a Gin middleware that rejects clients
// exceeding their rate budget with 429 Too Many Requests.
//
// # Examples
//
//	limiter := middleware.NewClientLimiter(5, 10)
//	router.Use(middleware.RateLimitMiddleware(limiter))
//
// # Thread Safety
//
// Thread-safe. The returned middleware can be used concurrently.
func RateLimitMiddleware(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, slow down",
			})
			return
		}
		c.Next()
	}
}
