// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package cache provides TTL-based in-memory caching of query responses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
)

// Default cache tuning. Answers to identical legal queries rarely change
// within the hour; cleanup runs at twice the TTL.
const (
	DefaultTTL             = 1 * time.Hour
	DefaultCleanupInterval = 2 * time.Hour
)

// AnswerCache caches full query responses keyed by a hash of the
// normalized query text. Safe for concurrent use.
type AnswerCache struct {
	cache *gocache.Cache
}

// NewAnswerCache creates an answer cache with the given TTL. Non-positive
// values fall back to the defaults.
func NewAnswerCache(ttl, cleanupInterval time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &AnswerCache{cache: gocache.New(ttl, cleanupInterval)}
}

// Key derives the cache key for a query. Normalization collapses case and
// surrounding whitespace so trivially restated queries share an entry.
func Key(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for a query, if present and unexpired.
func (c *AnswerCache) Get(query string) (*datatypes.QueryResponse, bool) {
	if val, found := c.cache.Get(Key(query)); found {
		return val.(*datatypes.QueryResponse), true
	}
	return nil, false
}

// Set stores a response under the query's key with the default TTL.
func (c *AnswerCache) Set(query string, resp *datatypes.QueryResponse) {
	c.cache.Set(Key(query), resp, gocache.DefaultExpiration)
}

// Delete removes the entry for a query.
func (c *AnswerCache) Delete(query string) {
	c.cache.Delete(Key(query))
}

// Flush removes all cached responses.
func (c *AnswerCache) Flush() {
	c.cache.Flush()
}

// Len returns the number of cached entries, including not-yet-evicted
// expired ones.
func (c *AnswerCache) Len() int {
	return c.cache.ItemCount()
}
