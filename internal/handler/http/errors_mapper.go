package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoClientGroupID:      http.StatusBadRequest,
	service.ErrValidationClientGroupIDTooLong: http.StatusBadRequest,
	service.ErrValidationInvalidCookie:        http.StatusBadRequest,
	service.ErrUnsupportedPullVersion:         http.StatusBadRequest,

	service.ErrInvalidToken:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHd: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:     http.StatusUnauthorized,

	store.ErrClientGroupForbidden: http.StatusForbidden,

	store.ErrRetryableTransaction: http.StatusServiceUnavailable,

	service.ErrPayloadMismatch: http.StatusInternalServerError,
	cvr.ErrDuplicateID:         http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
