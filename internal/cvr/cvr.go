// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cvr

import (
	"fmt"

	"github.com/MKhiriev/go-replisync/models"
)

// CVR maps every record id of one collection to the version the record had
// when the snapshot was taken. The zero value is an empty, usable CVR.
//
// A CVR is never modified after construction, so it can be shared between
// goroutines and stored in the cache without copying.
type CVR struct {
	versions map[string]int64
}

// FromSnapshot builds a CVR from the metadata rows of a collection scan.
// It returns [ErrDuplicateID] if an id occurs twice.
func FromSnapshot(records []models.RecordMeta) (CVR, error) {
	versions := make(map[string]int64, len(records))
	for _, r := range records {
		if _, ok := versions[r.ID]; ok {
			return CVR{}, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		versions[r.ID] = r.Version
	}

	return CVR{versions: versions}, nil
}

// Len returns the number of records in the snapshot.
func (c CVR) Len() int {
	return len(c.versions)
}

// Bundle groups the CVRs of every synced collection produced by one pull.
// It is keyed by collection name and, like CVR, is immutable once built.
type Bundle map[string]CVR

// Get returns the CVR stored for collection, or an empty CVR if the bundle
// has never seen that collection.
func (b Bundle) Get(collection string) CVR {
	return b[collection]
}
