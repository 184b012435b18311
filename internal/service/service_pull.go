// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/metrics"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

// pullService is the concrete implementation of PullService. It diffs the
// current state of every registered collection against the CVR bundle cached
// under the request cookie and turns the difference into a patch.
type pullService struct {
	transactor   store.Transactor
	clientGroups store.ClientGroupRepository
	clients      store.ClientRepository
	collections  []Collection
	cache        CVRCache

	logger *logger.Logger
}

// collectionChanges is what one collection contributes to a patch.
type collectionChanges struct {
	name string
	dels []string
	puts []models.Entry
}

// pullResult is everything read inside the pull transaction.
type pullResult struct {
	cookie  int64
	bundle  cvr.Bundle
	changes []collectionChanges
	clients []models.Client
}

// NewPullService builds a PullService over the given collections. Patch
// operations are emitted in the order the collections are passed.
func NewPullService(storages *store.Storages, cache CVRCache, logger *logger.Logger, collections ...Collection) (PullService, error) {
	if len(collections) == 0 {
		return nil, ErrNoCollections
	}

	return &pullService{
		transactor:   storages.Transactor,
		clientGroups: storages.ClientGroupRepository,
		clients:      storages.ClientRepository,
		collections:  collections,
		cache:        cache,
		logger:       logger,
	}, nil
}

// Pull computes the patch that brings the client group from req.Cookie to a
// fresh checkpoint. A cookie the cache does not know is answered with a
// clear followed by the full visible state.
func (s *pullService) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	base, ok := s.cache.Get(req.ClientGroupID, req.Cookie)
	cold := !ok
	if cold {
		base = cvr.Bundle{}
	}

	var res pullResult
	err := s.transactor.Transact(ctx, func(ex store.Executor) error {
		var txErr error
		res, txErr = s.read(ctx, ex, req, base)
		return txErr
	})
	if err != nil {
		metrics.ReportPull("error", time.Since(started))
		log.Err(err).
			Str("func", "pullService.Pull").
			Str("client_group_id", req.ClientGroupID).
			Msg("pull transaction failed")
		return models.PullResponse{}, err
	}

	resp := models.PullResponse{
		Cookie:                res.cookie,
		LastMutationIDChanges: make(map[string]int64, len(res.clients)),
		Patch:                 assemblePatch(cold, res.changes),
	}
	for _, c := range res.clients {
		resp.LastMutationIDChanges[c.ID] = c.LastMutationID
	}

	s.cache.Put(req.ClientGroupID, res.cookie, res.bundle)

	outcome := "ok"
	if cold {
		outcome = "cold"
	}
	metrics.ReportPull(outcome, time.Since(started))

	log.Debug().
		Str("func", "pullService.Pull").
		Str("client_group_id", req.ClientGroupID).
		Int64("cookie", res.cookie).
		Bool("cold", cold).
		Int("patch_len", len(resp.Patch)).
		Msg("pull served")

	return resp, nil
}

// read runs inside one transaction attempt and must not touch anything but ex.
func (s *pullService) read(ctx context.Context, ex store.Executor, req models.PullRequest, base cvr.Bundle) (pullResult, error) {
	owner, err := s.clientGroups.EnsureClientGroup(ctx, ex, req.ClientGroupID, req.UserID)
	if err != nil {
		return pullResult{}, err
	}
	if req.UserID != "" && owner != req.UserID {
		return pullResult{}, store.ErrClientGroupForbidden
	}

	cookie, err := s.clientGroups.NextCVRVersion(ctx, ex, req.ClientGroupID)
	if err != nil {
		return pullResult{}, err
	}

	res := pullResult{
		cookie:  cookie,
		bundle:  make(cvr.Bundle, len(s.collections)),
		changes: make([]collectionChanges, 0, len(s.collections)),
	}

	scope := NewScope(req.ClientGroupID, req.UserID)
	for _, c := range s.collections {
		metas, err := c.Scan(ctx, ex, scope)
		if err != nil {
			return pullResult{}, err
		}
		scope.setVisible(c.Name(), metas)

		next, err := cvr.FromSnapshot(metas)
		if err != nil {
			return pullResult{}, fmt.Errorf("collection %s: %w", c.Name(), err)
		}
		res.bundle[c.Name()] = next

		diff := cvr.Diff(base.Get(c.Name()), next)
		if diff.Empty() {
			continue
		}
		changes := collectionChanges{name: c.Name(), dels: diff.SortedDels()}

		if puts := diff.SortedPuts(); len(puts) > 0 {
			entries, err := c.Fetch(ctx, ex, puts)
			if err != nil {
				return pullResult{}, err
			}
			if err = checkFetched(puts, entries); err != nil {
				return pullResult{}, fmt.Errorf("collection %s: %w", c.Name(), err)
			}
			changes.puts = entries
		}

		res.changes = append(res.changes, changes)
	}

	res.clients, err = s.clients.SearchClients(ctx, ex, req.ClientGroupID)
	if err != nil {
		return pullResult{}, err
	}

	return res, nil
}

// checkFetched verifies that a fetch returned exactly the requested rows.
func checkFetched(ids []string, entries []models.Entry) error {
	if len(ids) != len(entries) {
		return fmt.Errorf("%w: requested %d, got %d", ErrPayloadMismatch, len(ids), len(entries))
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for _, e := range entries {
		if _, ok := want[e.ID]; !ok {
			return fmt.Errorf("%w: unexpected id %q", ErrPayloadMismatch, e.ID)
		}
		delete(want, e.ID)
	}

	return nil
}

func assemblePatch(cold bool, changes []collectionChanges) []models.PatchOperation {
	size := 0
	for _, c := range changes {
		size += len(c.dels) + len(c.puts)
	}
	if cold {
		size++
	}

	patch := make([]models.PatchOperation, 0, size)
	if cold {
		patch = append(patch, models.ClearOp())
		metrics.ReportPatchOps(models.OpClear, 1)
	}

	for _, c := range changes {
		for _, id := range c.dels {
			patch = append(patch, models.DelOp(patchKey(c.name, id)))
		}
		for _, e := range c.puts {
			patch = append(patch, models.PutOp(patchKey(c.name, e.ID), e.Value))
		}
		metrics.ReportPatchOps(models.OpDel, len(c.dels))
		metrics.ReportPatchOps(models.OpPut, len(c.puts))
	}

	return patch
}

func patchKey(collection, id string) string {
	return collection + "/" + id
}
