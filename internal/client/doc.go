// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the companion client runtime.
//
// It performs an initial pull into the local replica, prints what the
// replica holds and then keeps it converging with the server through the
// background workers until the process is stopped.
package client
