// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the prometheus collectors exported by the server.
// All collectors are registered on the default registry and exposed by the
// HTTP transport under /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the prefix shared by every metric of the service.
const Namespace = "replisync"

// NewCounter creates a counter vector under the global namespace.
func NewCounter(name, subsystem, help string, labels []string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewHistogramWithBuckets creates a histogram vector with custom buckets.
func NewHistogramWithBuckets(name, subsystem, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help, Buckets: buckets}, labels)
}

var (
	cacheLookups = NewCounter(
		"lookups_total",
		"cvr_cache",
		"CVR cache lookups by result",
		[]string{"result"},
	)
	cacheEvictions = NewCounter(
		"evictions_total",
		"cvr_cache",
		"CVR cache evictions by level (group or entry)",
		[]string{"level"},
	)
	pullDuration = NewHistogramWithBuckets(
		"duration_seconds",
		"pull",
		"Duration of pull requests by outcome",
		[]string{"outcome"},
		prometheus.ExponentialBuckets(0.001, 2, 14),
	)
	patchOps = NewCounter(
		"patch_ops_total",
		"pull",
		"Patch operations sent to clients by kind",
		[]string{"op"},
	)
	txRetries = NewCounter(
		"retries_total",
		"store_tx",
		"Transactions retried after a retryable database error",
		[]string{},
	)
)

// CacheHit records a CVR cache hit.
func CacheHit() { cacheLookups.WithLabelValues("hit").Inc() }

// CacheMiss records a CVR cache miss.
func CacheMiss() { cacheLookups.WithLabelValues("miss").Inc() }

// CacheGroupEvicted records eviction of a whole client group.
func CacheGroupEvicted() { cacheEvictions.WithLabelValues("group").Inc() }

// CacheEntryEvicted records eviction of one cookie of a client group.
func CacheEntryEvicted() { cacheEvictions.WithLabelValues("entry").Inc() }

// ReportPull records the duration of one pull. outcome is "ok", "cold" or
// "error".
func ReportPull(outcome string, d time.Duration) {
	pullDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ReportPatchOps adds n operations of kind op.
func ReportPatchOps(op string, n int) {
	if n > 0 {
		patchOps.WithLabelValues(op).Add(float64(n))
	}
}

// TxRetried records one retried transaction.
func TxRetried() { txRetries.WithLabelValues().Inc() }
