package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/models"
)

const (
	initReplica = `INSERT INTO replica_state (id, client_group_id) VALUES (1, ?)
		ON CONFLICT (id) DO NOTHING;`
	getReplicaClientGroupID = `SELECT client_group_id FROM replica_state WHERE id = 1;`
	getReplicaCookie        = `SELECT cookie FROM replica_state WHERE id = 1;`
	setReplicaCookie        = `UPDATE replica_state SET cookie = ? WHERE id = 1;`
	clearReplicaEntries     = `DELETE FROM replica_entries;`
	deleteReplicaEntry      = `DELETE FROM replica_entries WHERE key = ?;`
	putReplicaEntry         = `INSERT INTO replica_entries (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	getReplicaEntry = `SELECT value FROM replica_entries WHERE key = ?;`
	putReplicaAck   = `INSERT INTO replica_acks (client_id, last_mutation_id) VALUES (?, ?)
		ON CONFLICT (client_id) DO UPDATE SET last_mutation_id = excluded.last_mutation_id;`
	getReplicaAcks = `SELECT client_id, last_mutation_id FROM replica_acks;`
)

type replicaStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewReplicaStorage constructs the SQLite [ReplicaStorage] on top of db.
func NewReplicaStorage(db *DB, logger *logger.Logger) ReplicaStorage {
	return &replicaStorage{db: db, logger: logger}
}

func (r *replicaStorage) ClientGroupID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, getReplicaClientGroupID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrReplicaNotInitialized
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *replicaStorage) Init(ctx context.Context, clientGroupID string) (string, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, initReplica, clientGroupID); err != nil {
		log.Err(err).
			Str("func", "replicaStorage.Init").
			Str("client_group_id", clientGroupID).
			Msg("failed to initialize replica")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.ClientGroupID(ctx)
}

func (r *replicaStorage) Cookie(ctx context.Context) (*int64, error) {
	var cookie sql.NullInt64
	err := r.db.QueryRowContext(ctx, getReplicaCookie).Scan(&cookie)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReplicaNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !cookie.Valid {
		return nil, nil
	}
	return &cookie.Int64, nil
}

// ApplyPatch replays resp.Patch in order, records the acknowledgements and
// moves the cookie forward. Either all of it is stored or none.
func (r *replicaStorage) ApplyPatch(ctx context.Context, resp models.PullResponse) error {
	log := logger.FromContext(ctx)

	err := r.db.Transact(ctx, func(ex Executor) error {
		for i, op := range resp.Patch {
			if err := applyPatchOperation(ctx, ex, op); err != nil {
				return fmt.Errorf("patch operation %d (%s %q): %w", i, op.Op, op.Key, err)
			}
		}

		for clientID, lmid := range resp.LastMutationIDChanges {
			if _, err := ex.ExecContext(ctx, putReplicaAck, clientID, lmid); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		res, err := ex.ExecContext(ctx, setReplicaCookie, resp.Cookie)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrReplicaNotInitialized
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "replicaStorage.ApplyPatch").
			Int64("cookie", resp.Cookie).
			Int("ops", len(resp.Patch)).
			Msg("failed to apply patch")
		return err
	}

	return nil
}

func applyPatchOperation(ctx context.Context, ex Executor, op models.PatchOperation) error {
	switch op.Op {
	case models.OpClear:
		_, err := ex.ExecContext(ctx, clearReplicaEntries)
		return wrapExec(err)
	case models.OpDel:
		_, err := ex.ExecContext(ctx, deleteReplicaEntry, op.Key)
		return wrapExec(err)
	case models.OpPut:
		value, err := json.Marshal(op.Value)
		if err != nil {
			return err
		}
		_, err = ex.ExecContext(ctx, putReplicaEntry, op.Key, string(value))
		return wrapExec(err)
	default:
		return ErrUnknownPatchOperation
	}
}

func wrapExec(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *replicaStorage) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getReplicaEntry, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return json.RawMessage(value), true, nil
}

func (r *replicaStorage) Scan(ctx context.Context, prefix string) ([]models.ReplicaEntry, error) {
	log := logger.FromContext(ctx)

	query := sq.Select("key", "value").From("replica_entries")
	if prefix != "" {
		query = query.Where(sq.Expr("substr(key, 1, ?) = ?", len(prefix), prefix))
	}
	sqlQuery, args, err := query.OrderBy("key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "replicaStorage.Scan").
			Str("prefix", prefix).
			Msg("failed to scan replica")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ReplicaEntry, 0, 16)
	for rows.Next() {
		var (
			e     models.ReplicaEntry
			value string
		)
		if err = rows.Scan(&e.Key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Value = json.RawMessage(value)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *replicaStorage) LastMutationIDs(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, getReplicaAcks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	acks := make(map[string]int64)
	for rows.Next() {
		var (
			clientID string
			lmid     int64
		)
		if err = rows.Scan(&clientID, &lmid); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		acks[clientID] = lmid
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return acks, nil
}
