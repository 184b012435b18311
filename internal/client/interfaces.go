// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable client application.
type Client interface {
	// Run blocks until ctx is cancelled or a background worker fails.
	Run(ctx context.Context) error
}

// Runner is what the client drives in the background after the first pull.
type Runner interface {
	Run(ctx context.Context) error
}
