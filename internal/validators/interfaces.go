// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks pull protocol messages before they are acted
// on: requests on the server before any storage work, responses on the
// client before a patch touches the replica.
//
// Validate takes an optional list of field names; when none are given every
// rule for the type runs in a fixed order and the first failure is
// returned.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
