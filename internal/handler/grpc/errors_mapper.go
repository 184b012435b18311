package grpc

import (
	"errors"

	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrValidationNoClientGroupID:      codes.InvalidArgument,
	service.ErrValidationClientGroupIDTooLong: codes.InvalidArgument,
	service.ErrValidationInvalidCookie:        codes.InvalidArgument,
	service.ErrUnsupportedPullVersion:         codes.InvalidArgument,

	service.ErrInvalidToken:         codes.Unauthenticated,
	service.ErrTokenIsExpired:       codes.Unauthenticated,
	utils.ErrInvalidAuthorizationHd: codes.Unauthenticated,
	ErrMissingAuthorization:         codes.Unauthenticated,

	store.ErrClientGroupForbidden: codes.PermissionDenied,
	store.ErrRetryableTransaction: codes.Unavailable,
}

// statusFromError converts err into a status error. Anything not listed in
// errorCodeMap is Internal and keeps its message out of the response.
func statusFromError(err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
