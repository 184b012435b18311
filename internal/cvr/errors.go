// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cvr

import "errors"

// ErrDuplicateID is returned by [FromSnapshot] when one snapshot lists the
// same record id more than once. A well-formed scan never does that, so the
// caller must treat it as a defect and abort instead of guessing a version.
var ErrDuplicateID = errors.New("duplicate record id in snapshot")
