// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is one client connection (e.g. a browser tab) that belongs to a
// client group. LastMutationID is the id of the latest mutation from this
// client that the server has applied.
type Client struct {
	ID             string `json:"id"`
	ClientGroupID  string `json:"clientGroupID"`
	LastMutationID int64  `json:"lastMutationID"`
}
