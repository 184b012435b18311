package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-replisync/models"
)

const (
	FieldPullVersion           = "pull_version"
	FieldClientGroupID         = "client_group_id"
	FieldCookie                = "cookie"
	FieldPatch                 = "patch"
	FieldLastMutationIDChanges = "last_mutation_id_changes"
)

// MaxClientGroupIDLen matches the limit browsers put on Replicache names.
const MaxClientGroupIDLen = 255

type PullValidator struct{}

func NewPullValidator() Validator {
	return &PullValidator{}
}

func (v *PullValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PullRequest:
		return v.validatePullRequest(value, fields...)
	case *models.PullRequest:
		return v.validatePullRequest(*value, fields...)

	case models.PullResponse:
		return v.validatePullResponse(value, fields...)
	case *models.PullResponse:
		return v.validatePullResponse(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PullValidator) validatePullRequest(req models.PullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPullVersion, FieldClientGroupID, FieldCookie}
	}

	for _, f := range fields {
		switch f {
		case FieldPullVersion:
			if req.PullVersion != 0 && req.PullVersion != 1 {
				return fmt.Errorf("%w: %d", ErrUnsupportedPullVersion, req.PullVersion)
			}
		case FieldClientGroupID:
			if strings.TrimSpace(req.ClientGroupID) == "" {
				return ErrNoClientGroupID
			}
			if len(req.ClientGroupID) > MaxClientGroupIDLen {
				return ErrClientGroupIDTooLong
			}
		case FieldCookie:
			if req.Cookie != nil && *req.Cookie < 0 {
				return ErrInvalidCookie
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PullValidator) validatePullResponse(resp models.PullResponse, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCookie, FieldLastMutationIDChanges, FieldPatch}
	}

	for _, f := range fields {
		switch f {
		case FieldCookie:
			if resp.Cookie < 0 {
				return ErrInvalidCookie
			}
		case FieldLastMutationIDChanges:
			for clientID, id := range resp.LastMutationIDChanges {
				if id < 0 {
					return fmt.Errorf("%w: client %q", ErrInvalidLastMutationID, clientID)
				}
			}
		case FieldPatch:
			if err := validatePatch(resp.Patch); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePatch(patch []models.PatchOperation) error {
	for i, op := range patch {
		switch op.Op {
		case models.OpClear:
			if i != 0 {
				return fmt.Errorf("%w: at %d", ErrMisplacedClear, i)
			}
		case models.OpDel, models.OpPut:
			if op.Key == "" {
				return fmt.Errorf("%w: at %d", ErrEmptyPatchKey, i)
			}
		default:
			return fmt.Errorf("%w: %q at %d", ErrInvalidPatchOperation, op.Op, i)
		}
	}

	return nil
}
