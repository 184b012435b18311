package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/models"
)

type listRepository struct {
	logger *logger.Logger
}

// NewListRepository constructs the PostgreSQL [ListRepository].
func NewListRepository(logger *logger.Logger) ListRepository {
	return &listRepository{logger: logger}
}

// SearchLists returns id and version of the lists owned by ownerID, or of
// every list when ownerID is empty, ordered by id.
func (r *listRepository) SearchLists(ctx context.Context, ex Executor, ownerID string) ([]models.RecordMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchListsQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.SearchLists").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	metas, err := queryRecordMetas(ctx, ex, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.SearchLists").
			Str("owner_id", ownerID).
			Str("pg_code", postgresError(err)).
			Msg("failed to search lists")
		return nil, err
	}

	return metas, nil
}

// GetLists loads the lists with the given ids in one query, ordered by id.
func (r *listRepository) GetLists(ctx context.Context, ex Executor, ids []string) ([]models.List, error) {
	if len(ids) == 0 {
		return []models.List{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildGetListsQuery(ids)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.GetLists").
			Int("ids", len(ids)).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listRepository.GetLists").
			Int("ids", len(ids)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for getting lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.List, 0, len(ids))
	for rows.Next() {
		var l models.List
		if err = rows.Scan(&l.ID, &l.OwnerID, &l.Name); err != nil {
			log.Err(err).
				Str("func", "listRepository.GetLists").
				Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		lists = append(lists, l)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "listRepository.GetLists").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, nil
}

// queryRecordMetas runs a query selecting (id, version) pairs.
func queryRecordMetas(ctx context.Context, ex Executor, query string, args []any) ([]models.RecordMeta, error) {
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metas := make([]models.RecordMeta, 0, 64)
	for rows.Next() {
		var m models.RecordMeta
		if err = rows.Scan(&m.ID, &m.Version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		metas = append(metas, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metas, nil
}
