package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/logger"
)

type clientGroupRepository struct {
	logger *logger.Logger
}

// NewClientGroupRepository constructs the PostgreSQL [ClientGroupRepository].
func NewClientGroupRepository(logger *logger.Logger) ClientGroupRepository {
	return &clientGroupRepository{logger: logger}
}

// EnsureClientGroup inserts the client group row unless it already exists
// and returns the owner stored in it. An existing row keeps its user and
// version.
func (r *clientGroupRepository) EnsureClientGroup(ctx context.Context, ex Executor, clientGroupID, userID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEnsureClientGroupQuery(clientGroupID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "clientGroupRepository.EnsureClientGroup").
			Str("client_group_id", clientGroupID).
			Msg("failed to create query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner string
	if err = ex.QueryRowContext(ctx, query, args...).Scan(&owner); err != nil {
		log.Err(err).
			Str("func", "clientGroupRepository.EnsureClientGroup").
			Str("client_group_id", clientGroupID).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert client group")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return owner, nil
}

// NextCVRVersion bumps the client group's CVR version and returns the new
// value. Inside a serializable transaction the returned value is unique per
// committed pull of the group.
func (r *clientGroupRepository) NextCVRVersion(ctx context.Context, ex Executor, clientGroupID string) (int64, error) {
	log := logger.FromContext(ctx)

	var version int64
	err := ex.QueryRowContext(ctx, nextCVRVersion, clientGroupID).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().
			Str("func", "clientGroupRepository.NextCVRVersion").
			Str("client_group_id", clientGroupID).
			Msg("client group does not exist")
		return 0, ErrClientGroupNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "clientGroupRepository.NextCVRVersion").
			Str("client_group_id", clientGroupID).
			Str("pg_code", postgresError(err)).
			Msg("failed to bump cvr version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, nil
}
