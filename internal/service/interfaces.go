package service

import (
	"context"

	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// PullService answers "what changed since checkpoint C" for one client group.
type PullService interface {
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)
}

// PullServiceWrapper defines middleware composition for PullService.
// Implementations wrap an existing PullService to add behavior such as
// validation.
type PullServiceWrapper interface {
	Wrap(PullService) PullService
}

// AuthService verifies bearer tokens presented to the pull endpoints.
type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CVRCache is the checkpoint cache the pull service diffs against.
type CVRCache interface {
	Get(clientGroupID string, cookie *int64) (cvr.Bundle, bool)
	Put(clientGroupID string, cookie int64, bundle cvr.Bundle)
}

// Collection is the sync strategy of one collection: which rows a client
// group can see and how to load them.
type Collection interface {
	// Name is the collection name used as the key prefix in patches.
	Name() string
	// Scan returns id and version of every row visible under scope.
	Scan(ctx context.Context, ex store.Executor, scope *Scope) ([]models.RecordMeta, error)
	// Fetch loads the rows with the given ids in one round trip.
	Fetch(ctx context.Context, ex store.Executor, ids []string) ([]models.Entry, error)
}
