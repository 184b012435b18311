package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/migrations"
)

// DefaultMaxTxAttempts is used when the configured attempt count is zero.
const DefaultMaxTxAttempts = 3

// DB is a database connection shared by the repositories. It implements
// [Transactor].
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	maxTxAttempts      int
	logger             *logger.Logger
}

// NewConnectPostgres opens and pings the server database.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newPostgresDB(conn, cfg.MaxTxAttempts, log), nil
}

func newPostgresDB(conn *sql.DB, maxTxAttempts int, log *logger.Logger) *DB {
	if maxTxAttempts <= 0 {
		maxTxAttempts = DefaultMaxTxAttempts
	}

	return &DB{
		DB:                 conn,
		logger:             log,
		maxTxAttempts:      maxTxAttempts,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
