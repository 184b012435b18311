package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnsupportedPullVersion = errors.New("unsupported pull version")
	ErrNoClientGroupID        = errors.New("no client group ID provided")
	ErrClientGroupIDTooLong   = errors.New("client group ID is too long")
	ErrInvalidCookie          = errors.New("cookie must not be negative")

	ErrInvalidPatchOperation = errors.New("invalid patch operation")
	ErrEmptyPatchKey         = errors.New("patch operation key is empty")
	ErrMisplacedClear        = errors.New("clear must be the first patch operation")
	ErrInvalidLastMutationID = errors.New("last mutation id must not be negative")
)
