// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Patch operation kinds.
const (
	OpClear = "clear"
	OpDel   = "del"
	OpPut   = "put"
)

// PullRequest is sent by a client that wants to learn what changed since
// the checkpoint named by Cookie.
type PullRequest struct {
	// PullVersion is the protocol version of the request. Zero is treated
	// as the current version (1).
	PullVersion int `json:"pullVersion,omitempty"`

	// ProfileID identifies the browser profile. Informational only.
	ProfileID string `json:"profileID,omitempty"`

	// ClientGroupID names the group of clients that share one sync state.
	ClientGroupID string `json:"clientGroupID"`

	// Cookie is the checkpoint returned by the previous pull, or nil on the
	// very first pull of the client group.
	Cookie *int64 `json:"cookie"`

	// SchemaVersion is the client-side schema version. Informational only.
	SchemaVersion string `json:"schemaVersion,omitempty"`

	// UserID is the authenticated owner of the client group. It is never read
	// from the body; transports fill it from the credentials they verified.
	UserID string `json:"-"`
}

// PullResponse carries the patch that brings the client's replica from the
// requested checkpoint to Cookie.
type PullResponse struct {
	// Cookie is the new checkpoint the client must send with its next pull.
	Cookie int64 `json:"cookie"`

	// LastMutationIDChanges maps every client of the group to the id of the
	// last mutation the server has applied for it.
	LastMutationIDChanges map[string]int64 `json:"lastMutationIDChanges"`

	// Patch is the ordered list of operations to apply to the replica.
	Patch []PatchOperation `json:"patch"`
}

// PatchOperation is one step of a [PullResponse] patch. Key is empty for
// clear, Value is set only for put.
type PatchOperation struct {
	Op    string `json:"op"`
	Key   string `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`
}

// ClearOp returns an operation that discards the whole replica.
func ClearOp() PatchOperation {
	return PatchOperation{Op: OpClear}
}

// DelOp returns an operation that removes key from the replica.
func DelOp(key string) PatchOperation {
	return PatchOperation{Op: OpDel, Key: key}
}

// PutOp returns an operation that writes value under key.
func PutOp(key string, value any) PatchOperation {
	return PatchOperation{Op: OpPut, Key: key, Value: value}
}

// ErrorResponse is returned by transports instead of a [PullResponse] when the
// request cannot be served.
type ErrorResponse struct {
	Error string `json:"error"`
}
