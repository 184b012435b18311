// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cvr

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Result is the outcome of comparing two CVRs of the same collection.
//
// Puts and Dels are disjoint by construction: a put id is present in the
// next snapshot, a del id is absent from it.
type Result struct {
	// Puts holds ids that are new in next or whose version changed.
	Puts mapset.Set[string]

	// Dels holds ids present in base but missing from next.
	Dels mapset.Set[string]
}

// Diff compares base (what the client last saw) with next (what it should see
// now). Ids present in both with the same version are reported in neither
// set. Runs in O(len(base) + len(next)).
func Diff(base, next CVR) Result {
	res := Result{
		Puts: mapset.NewThreadUnsafeSetWithSize[string](next.Len()),
		Dels: mapset.NewThreadUnsafeSet[string](),
	}

	for id, nextVersion := range next.versions {
		if baseVersion, ok := base.versions[id]; !ok || baseVersion != nextVersion {
			res.Puts.Add(id)
		}
	}

	for id := range base.versions {
		if _, ok := next.versions[id]; !ok {
			res.Dels.Add(id)
		}
	}

	return res
}

// Empty reports whether the diff produces no patch operations.
func (r Result) Empty() bool {
	return r.Puts.Cardinality() == 0 && r.Dels.Cardinality() == 0
}

// SortedPuts returns the put ids in ascending order.
func (r Result) SortedPuts() []string {
	return sorted(r.Puts)
}

// SortedDels returns the del ids in ascending order.
func (r Result) SortedDels() []string {
	return sorted(r.Dels)
}

func sorted(s mapset.Set[string]) []string {
	ids := s.ToSlice()
	slices.Sort(ids)
	return ids
}
