package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
)

// Storages groups everything the pull service needs from the server
// database.
type Storages struct {
	Transactor            Transactor
	ClientGroupRepository ClientGroupRepository
	ClientRepository      ClientRepository
	ListRepository        ListRepository
	TodoRepository        TodoRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Msg("storages created")
	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Transactor:            db,
		ClientGroupRepository: NewClientGroupRepository(logger),
		ClientRepository:      NewClientRepository(logger),
		ListRepository:        NewListRepository(logger),
		TodoRepository:        NewTodoRepository(logger),
		db:                    db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
