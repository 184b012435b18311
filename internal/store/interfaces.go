package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/MKhiriev/go-replisync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Executor is the unit of work every repository call runs in. Both *sql.DB
// and *sql.Tx satisfy it; the pull path always hands repositories the *sql.Tx
// opened by [Transactor.Transact].
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs fn inside one transaction. fn may be invoked more than once
// when the transaction has to be retried, so it must not have side effects
// outside of ex.
type Transactor interface {
	Transact(ctx context.Context, fn func(ex Executor) error) error
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ClientGroupRepository manages client group rows and their CVR versions.
type ClientGroupRepository interface {
	// EnsureClientGroup creates the client group if it does not exist yet
	// and returns the user recorded as its owner.
	EnsureClientGroup(ctx context.Context, ex Executor, clientGroupID, userID string) (string, error)
	// NextCVRVersion increments and returns the group's CVR version.
	NextCVRVersion(ctx context.Context, ex Executor, clientGroupID string) (int64, error)
}

// ClientRepository reads the clients of a client group.
type ClientRepository interface {
	SearchClients(ctx context.Context, ex Executor, clientGroupID string) ([]models.Client, error)
}

// ListRepository reads lists. An empty ownerID matches every list.
type ListRepository interface {
	SearchLists(ctx context.Context, ex Executor, ownerID string) ([]models.RecordMeta, error)
	GetLists(ctx context.Context, ex Executor, ids []string) ([]models.List, error)
}

// TodoRepository reads todos of the given lists.
type TodoRepository interface {
	SearchTodos(ctx context.Context, ex Executor, listIDs []string) ([]models.RecordMeta, error)
	GetTodos(ctx context.Context, ex Executor, ids []string) ([]models.Todo, error)
}

// ReplicaStorage is the client-side copy of everything the server has sent.
type ReplicaStorage interface {
	// ClientGroupID returns the persisted client group id or
	// [ErrReplicaNotInitialized].
	ClientGroupID(ctx context.Context) (string, error)
	// Init stores clientGroupID unless one is already stored and returns the
	// id in effect.
	Init(ctx context.Context, clientGroupID string) (string, error)
	// Cookie returns the checkpoint of the last applied patch, nil before the
	// first one.
	Cookie(ctx context.Context) (*int64, error)
	// ApplyPatch applies the response patch, its acknowledgements and its
	// cookie in one transaction.
	ApplyPatch(ctx context.Context, resp models.PullResponse) error
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	// Scan returns every entry whose key starts with prefix, ordered by key.
	Scan(ctx context.Context, prefix string) ([]models.ReplicaEntry, error)
	// LastMutationIDs returns the acknowledged mutation id per client.
	LastMutationIDs(ctx context.Context) (map[string]int64, error)
}
