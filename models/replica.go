package models

import "encoding/json"

// ReplicaEntry is one key of the client-side replica together with the JSON
// value the server last put under it.
type ReplicaEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
