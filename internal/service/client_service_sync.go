package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/adapter"
	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/MKhiriev/go-replisync/internal/validators"
	"github.com/MKhiriev/go-replisync/models"
)

// currentPullVersion is the pull protocol version the client speaks.
const currentPullVersion = 1

type clientSyncService struct {
	replica store.ReplicaStorage
	adapter adapter.ServerAdapter
	ids     utils.IDGenerator
	checker validators.Validator

	clientGroupID string

	logger *logger.Logger
}

// NewClientSyncService creates the poll-cycle service. When cfg names no
// client group, a new UUIDv7 is generated on first use and persisted in the
// replica, so later runs keep the same group.
func NewClientSyncService(replica store.ReplicaStorage, serverAdapter adapter.ServerAdapter, cfg config.ClientSync, ids utils.IDGenerator, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		replica:       replica,
		adapter:       serverAdapter,
		ids:           ids,
		checker:       validators.NewPullValidator(),
		clientGroupID: cfg.ClientGroupID,
		logger:        logger,
	}
}

func (s *clientSyncService) Pull(ctx context.Context) error {
	clientGroupID, err := s.ensureClientGroup(ctx)
	if err != nil {
		return fmt.Errorf("init replica: %w", err)
	}

	cookie, err := s.replica.Cookie(ctx)
	if err != nil {
		return fmt.Errorf("read cookie: %w", err)
	}

	resp, err := s.adapter.Pull(ctx, models.PullRequest{
		PullVersion:   currentPullVersion,
		ClientGroupID: clientGroupID,
		Cookie:        cookie,
	})
	if err != nil {
		return fmt.Errorf("pull from server: %w", err)
	}
	if err = s.checker.Validate(ctx, resp); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPullResponse, err)
	}

	if err = s.replica.ApplyPatch(ctx, resp); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientSyncService.Pull").
		Str("client_group_id", clientGroupID).
		Int64("cookie", resp.Cookie).
		Int("patch_len", len(resp.Patch)).
		Msg("replica synced")

	return nil
}

// ensureClientGroup returns the group stored in the replica, storing the
// configured or a generated one first if the replica is new.
func (s *clientSyncService) ensureClientGroup(ctx context.Context) (string, error) {
	stored, err := s.replica.ClientGroupID(ctx)
	if err == nil {
		if s.clientGroupID != "" && stored != s.clientGroupID {
			s.logger.Warn().
				Str("func", "clientSyncService.ensureClientGroup").
				Str("stored", stored).
				Str("configured", s.clientGroupID).
				Msg("replica belongs to another client group, keeping the stored one")
		}
		return stored, nil
	}
	if !errors.Is(err, store.ErrReplicaNotInitialized) {
		return "", err
	}

	id := s.clientGroupID
	if id == "" {
		id = s.ids.Generate()
	}

	return s.replica.Init(ctx, id)
}
