// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/metrics"
)

// Transact runs fn in a serializable transaction and commits it when fn
// returns nil. Failures classified as [Retryable] (serialization failures,
// deadlocks, lost connections) restart fn in a fresh transaction up to the
// configured number of attempts; when they are exhausted the last error is
// wrapped in [ErrRetryableTransaction].
func (db *DB) Transact(ctx context.Context, fn func(ex Executor) error) error {
	log := logger.FromContext(ctx)

	attempts := max(db.maxTxAttempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = db.transactOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.Transact").
			Int("attempt", attempt).
			Str("pg_code", postgresError(err)).
			Msg("retryable transaction failure")

		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(err, ctxErr)
		}
		if attempt < attempts {
			metrics.TxRetried()
		}
	}

	return fmt.Errorf("%w: %w", ErrRetryableTransaction, err)
}

func (db *DB) transactOnce(ctx context.Context, fn func(ex Executor) error) (err error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
