// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the process-wide CVR cache that lets a pull diff
// against what the client group was sent last time instead of resending
// everything.
//
// The cache is best-effort: losing an entry only costs the client one full
// resync, so it is bounded in both the number of client groups and the
// number of checkpoints kept per group, and idle groups expire.
package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/internal/metrics"
)

// Defaults used when the corresponding config values are zero.
const (
	DefaultMaxClientGroups = 10_000
	DefaultEntriesPerGroup = 4
	DefaultTTL             = 30 * time.Minute
)

type groupEntries = lru.Cache[int64, cvr.Bundle]

// CVRCache maps (client group, cookie) to the bundle of CVRs produced by the
// pull that issued that cookie. It is safe for concurrent use.
type CVRCache struct {
	// mu serializes creation of per-group caches; lookups do not take it.
	mu sync.Mutex

	groups          *expirable.LRU[string, *groupEntries]
	entriesPerGroup int
}

// New creates a CVRCache bounded by cfg. Zero values fall back to the
// package defaults.
func New(cfg config.Cache) *CVRCache {
	maxGroups := cfg.MaxClientGroups
	if maxGroups <= 0 {
		maxGroups = DefaultMaxClientGroups
	}
	perGroup := cfg.EntriesPerGroup
	if perGroup <= 0 {
		perGroup = DefaultEntriesPerGroup
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	onGroupEvict := func(string, *groupEntries) {
		metrics.CacheGroupEvicted()
	}

	return &CVRCache{
		groups:          expirable.NewLRU[string, *groupEntries](maxGroups, onGroupEvict, ttl),
		entriesPerGroup: perGroup,
	}
}

// Get returns the bundle cached for (clientGroupID, cookie). A nil cookie,
// an unknown group, an evicted entry and a cookie that was never issued are
// all reported as a miss.
func (c *CVRCache) Get(clientGroupID string, cookie *int64) (cvr.Bundle, bool) {
	if cookie == nil {
		metrics.CacheMiss()
		return nil, false
	}

	entries, ok := c.groups.Get(clientGroupID)
	if !ok {
		metrics.CacheMiss()
		return nil, false
	}

	bundle, ok := entries.Get(*cookie)
	if !ok {
		metrics.CacheMiss()
		return nil, false
	}

	metrics.CacheHit()
	return bundle, true
}

// Put stores bundle under (clientGroupID, cookie). A concurrent Put for the
// same key replaces the value atomically; the last writer wins.
func (c *CVRCache) Put(clientGroupID string, cookie int64, bundle cvr.Bundle) {
	c.entriesFor(clientGroupID).Add(cookie, bundle)
}

// Len returns the number of client groups currently cached.
func (c *CVRCache) Len() int {
	return c.groups.Len()
}

func (c *CVRCache) entriesFor(clientGroupID string) *groupEntries {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.groups.Get(clientGroupID)
	if !ok {
		// lru.New only fails for a non-positive size, which New rules out.
		entries, _ = lru.NewWithEvict[int64, cvr.Bundle](c.entriesPerGroup, func(int64, cvr.Bundle) {
			metrics.CacheEntryEvicted()
		})
	}
	// Re-adding refreshes the group's expiry.
	c.groups.Add(clientGroupID, entries)

	return entries
}
