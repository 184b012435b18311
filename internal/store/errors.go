package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientGroupNotFound is returned when a version is requested for a
	// client group that has no row.
	ErrClientGroupNotFound = errors.New("client group was not found")

	// ErrClientGroupForbidden is returned when a user pulls a client group
	// owned by another user.
	ErrClientGroupForbidden = errors.New("client group belongs to another user")

	// ErrRetryableTransaction is returned by [DB.Transact] when every attempt
	// failed with an error classified as [Retryable]. The caller may retry
	// the whole operation later.
	ErrRetryableTransaction = errors.New("transaction failed after retries")

	// ErrReplicaNotInitialized is returned by the client replica when its
	// client group id has not been stored yet.
	ErrReplicaNotInitialized = errors.New("replica is not initialized")

	// ErrUnknownPatchOperation is returned when a patch contains an operation
	// other than clear, del or put.
	ErrUnknownPatchOperation = errors.New("unknown patch operation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
