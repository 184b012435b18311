package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/models"
)

type clientRepository struct {
	logger *logger.Logger
}

// NewClientRepository constructs the PostgreSQL [ClientRepository].
func NewClientRepository(logger *logger.Logger) ClientRepository {
	return &clientRepository{logger: logger}
}

// SearchClients returns every client of the group ordered by id.
func (r *clientRepository) SearchClients(ctx context.Context, ex Executor, clientGroupID string) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchClientsQuery(clientGroupID)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.SearchClients").
			Str("client_group_id", clientGroupID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.SearchClients").
			Str("client_group_id", clientGroupID).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for searching clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, 4)
	for rows.Next() {
		var c models.Client
		if err = rows.Scan(&c.ID, &c.ClientGroupID, &c.LastMutationID); err != nil {
			log.Err(err).
				Str("func", "clientRepository.SearchClients").
				Str("client_group_id", clientGroupID).
				Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "clientRepository.SearchClients").
			Str("client_group_id", clientGroupID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}
