// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordMeta is the minimal projection of a synced row: its identifier and
// the server-assigned version it currently carries. Versions grow
// monotonically every time the row is modified.
type RecordMeta struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// Entry is a fully loaded row of some synced collection, ready to be sent to
// a client as the value of a put operation.
type Entry struct {
	// ID is the row identifier within its collection.
	ID string

	// Value is the JSON-serializable payload of the row.
	Value any
}
