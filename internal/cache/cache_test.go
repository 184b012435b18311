// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleOf(t *testing.T, ids ...string) cvr.Bundle {
	t.Helper()
	records := make([]models.RecordMeta, 0, len(ids))
	for _, id := range ids {
		records = append(records, models.RecordMeta{ID: id, Version: 1})
	}
	lists, err := cvr.FromSnapshot(records)
	require.NoError(t, err)
	return cvr.Bundle{"list": lists}
}

func ptr(v int64) *int64 { return &v }

func TestCVRCache_GetPut(t *testing.T) {
	c := New(config.Cache{})
	b := bundleOf(t, "a", "b")

	c.Put("cg1", 3, b)

	got, ok := c.Get("cg1", ptr(3))
	require.True(t, ok)
	assert.Equal(t, 2, got.Get("list").Len())

	tests := []struct {
		name   string
		group  string
		cookie *int64
	}{
		{name: "nil cookie", group: "cg1", cookie: nil},
		{name: "unknown cookie", group: "cg1", cookie: ptr(4)},
		{name: "cookie of another group", group: "cg2", cookie: ptr(3)},
		{name: "cookie never issued", group: "cg1", cookie: ptr(1 << 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Get(tt.group, tt.cookie)
			assert.False(t, ok)
		})
	}
}

func TestCVRCache_EntriesPerGroupBound(t *testing.T) {
	c := New(config.Cache{EntriesPerGroup: 2})

	c.Put("cg", 1, bundleOf(t, "a"))
	c.Put("cg", 2, bundleOf(t, "b"))
	c.Put("cg", 3, bundleOf(t, "c"))

	_, ok := c.Get("cg", ptr(1))
	assert.False(t, ok, "oldest checkpoint must be evicted")

	_, ok = c.Get("cg", ptr(2))
	assert.True(t, ok)
	_, ok = c.Get("cg", ptr(3))
	assert.True(t, ok)
}

func TestCVRCache_MaxClientGroupsBound(t *testing.T) {
	c := New(config.Cache{MaxClientGroups: 2})

	c.Put("cg1", 1, bundleOf(t, "a"))
	c.Put("cg2", 1, bundleOf(t, "a"))
	c.Put("cg3", 1, bundleOf(t, "a"))

	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("cg1", ptr(1))
	assert.False(t, ok, "least recently used group must be evicted")
	_, ok = c.Get("cg3", ptr(1))
	assert.True(t, ok)
}

func TestCVRCache_TTL(t *testing.T) {
	c := New(config.Cache{TTL: 20 * time.Millisecond})

	c.Put("cg", 1, bundleOf(t, "a"))
	_, ok := c.Get("cg", ptr(1))
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = c.Get("cg", ptr(1))
	assert.False(t, ok)
}

// Two pulls of one client group finishing with the same cookie must leave
// exactly one of the two bundles behind, never a mix.
func TestCVRCache_ConcurrentPutSameKey(t *testing.T) {
	c := New(config.Cache{})

	first := bundleOf(t, "a")
	second := bundleOf(t, "x", "y")

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c.Put("cg", 7, first)
			} else {
				c.Put("cg", 7, second)
			}
		}()
	}
	wg.Wait()

	got, ok := c.Get("cg", ptr(7))
	require.True(t, ok)

	lists := got.Get("list")
	isFirst := cvr.Diff(first.Get("list"), lists).Empty()
	isSecond := cvr.Diff(second.Get("list"), lists).Empty()
	assert.True(t, isFirst || isSecond, "bundle must be one of the stored ones, got %d lists", lists.Len())
}

func TestCVRCache_ConcurrentDistinctGroups(t *testing.T) {
	c := New(config.Cache{})

	bundles := make([]cvr.Bundle, 50)
	for i := range bundles {
		bundles[i] = bundleOf(t, fmt.Sprintf("cg-%d", i))
	}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			group := fmt.Sprintf("cg-%d", i)
			c.Put(group, int64(i), bundles[i])
			_, _ = c.Get(group, ptr(int64(i)))
		}()
	}
	wg.Wait()

	for i := range 50 {
		_, ok := c.Get(fmt.Sprintf("cg-%d", i), ptr(int64(i)))
		assert.True(t, ok)
	}
}
