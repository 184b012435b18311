// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's view of the replisync server.
//
// [ServerAdapter] decouples the client sync service from the wire protocol.
// The package ships an HTTP implementation ([NewHTTPServerAdapter]); error
// values in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-replisync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the replisync server on behalf of the client.
type ServerAdapter interface {
	// Pull asks the server for the patch from req.Cookie to the current
	// state of req.ClientGroupID.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)
}
