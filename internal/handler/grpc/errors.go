package grpc

import "errors"

// ErrMissingAuthorization is returned when a call to an authenticated
// server carries no authorization metadata.
var ErrMissingAuthorization = errors.New("missing authorization metadata")
