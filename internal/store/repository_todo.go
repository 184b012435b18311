package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/models"
)

type todoRepository struct {
	logger *logger.Logger
}

// NewTodoRepository constructs the PostgreSQL [TodoRepository].
func NewTodoRepository(logger *logger.Logger) TodoRepository {
	return &todoRepository{logger: logger}
}

// SearchTodos returns id and version of every todo that belongs to one of
// listIDs, ordered by id. No list means no todos.
func (r *todoRepository) SearchTodos(ctx context.Context, ex Executor, listIDs []string) ([]models.RecordMeta, error) {
	if len(listIDs) == 0 {
		return []models.RecordMeta{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSearchTodosQuery(listIDs)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.SearchTodos").
			Int("lists", len(listIDs)).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	metas, err := queryRecordMetas(ctx, ex, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.SearchTodos").
			Int("lists", len(listIDs)).
			Str("pg_code", postgresError(err)).
			Msg("failed to search todos")
		return nil, err
	}

	return metas, nil
}

// GetTodos loads the todos with the given ids in one query, ordered by id.
func (r *todoRepository) GetTodos(ctx context.Context, ex Executor, ids []string) ([]models.Todo, error) {
	if len(ids) == 0 {
		return []models.Todo{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildGetTodosQuery(ids)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetTodos").
			Int("ids", len(ids)).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetTodos").
			Int("ids", len(ids)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for getting todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, len(ids))
	for rows.Next() {
		var t models.Todo
		if err = rows.Scan(&t.ID, &t.ListID, &t.Text, &t.Completed, &t.Sort); err != nil {
			log.Err(err).
				Str("func", "todoRepository.GetTodos").
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, t)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetTodos").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}
