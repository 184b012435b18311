package service

import (
	"errors"

	"github.com/MKhiriev/go-replisync/internal/validators"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoCollections         = errors.New("no collections registered")

	// ErrPayloadMismatch means a fetch did not return exactly the rows the
	// scan of the same transaction reported as changed.
	ErrPayloadMismatch = errors.New("fetched payloads do not match scanned ids")

	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidationNoClientGroupID      = validators.ErrNoClientGroupID
	ErrValidationClientGroupIDTooLong = validators.ErrClientGroupIDTooLong
	ErrValidationInvalidCookie        = validators.ErrInvalidCookie
	ErrUnsupportedPullVersion         = validators.ErrUnsupportedPullVersion

	// ErrInvalidPullResponse means the server answered with a response the
	// client refuses to apply.
	ErrInvalidPullResponse = errors.New("invalid pull response")
)
