// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// List is a named collection of todos owned by a single user.
type List struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerID"`
	Name    string `json:"name"`
}
