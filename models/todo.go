// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Todo is a single item of a [List].
type Todo struct {
	ID        string  `json:"id"`
	ListID    string  `json:"listID"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Sort      float64 `json:"sort"`
}
