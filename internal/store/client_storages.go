package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
)

// ClientStorages groups the client-side storage. Currently it holds only the
// SQLite replica.
type ClientStorages struct {
	// Replica is the local copy of the synced collections.
	Replica ReplicaStorage

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.DB.DSN, applies the replica migrations and wires the replica.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateReplica(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Replica: NewReplicaStorage(db, logger),
		db:      db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
