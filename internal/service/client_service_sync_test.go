// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/mock"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// inProcessAdapter serves pulls straight from a PullService.
type inProcessAdapter struct {
	svc    PullService
	userID string
}

func (a inProcessAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	req.UserID = a.userID
	return a.svc.Pull(ctx, req)
}

func newSQLiteReplica(t *testing.T) store.ReplicaStorage {
	t.Helper()

	s, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "replica.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s.Replica
}

func TestClientSync_ConvergesOverSQLite(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	seed(m)
	pullSvc := NewPullValidationService(logger.Nop()).Wrap(newTestPullService(t, m, newSpyCache()))

	replica := newSQLiteReplica(t)
	sync := NewClientSyncService(replica, inProcessAdapter{svc: pullSvc, userID: "alice"},
		config.ClientSync{ClientGroupID: "cg1"}, fixedIDs("unused"), logger.Nop())
	reader := NewClientReplicaService(replica)

	require.NoError(t, sync.Pull(ctx))

	lists, err := reader.Lists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.List{{ID: "l1", OwnerID: "alice", Name: "Groceries"}}, lists)

	todos, err := reader.Todos(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "milk", todos[0].Text)
	assert.Equal(t, "eggs", todos[1].Text)

	acks, err := reader.LastMutationIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"c1": 4}, acks)

	m.deleteTodo("t1")
	m.putTodo(models.Todo{ID: "t2", ListID: "l1", Text: "eggs", Completed: true, Sort: 2})
	require.NoError(t, sync.Pull(ctx))

	_, ok, err := reader.Todo(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	t2, ok, err := reader.Todo(ctx, "t2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, t2.Completed)

	cookie, err := replica.Cookie(ctx)
	require.NoError(t, err)
	require.NotNil(t, cookie)
	assert.Equal(t, int64(2), *cookie)
}

func TestClientSync_GeneratesClientGroupOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	replica := newSQLiteReplica(t)

	serverAdapter.EXPECT().
		Pull(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PullRequest) (models.PullResponse, error) {
			assert.Equal(t, "generated-cg", req.ClientGroupID)
			assert.Equal(t, 1, req.PullVersion)
			return models.PullResponse{Cookie: 1, Patch: []models.PatchOperation{models.ClearOp()}}, nil
		}).Times(2)

	svc := NewClientSyncService(replica, serverAdapter, config.ClientSync{}, fixedIDs("generated-cg"), logger.Nop())
	require.NoError(t, svc.Pull(ctx))

	// a later generator value must not replace the stored group
	svc = NewClientSyncService(replica, serverAdapter, config.ClientSync{}, fixedIDs("other"), logger.Nop())
	require.NoError(t, svc.Pull(ctx))
}

func TestClientSync_Failures(t *testing.T) {
	errBoom := errors.New("boom")
	cookie := int64(5)

	tests := []struct {
		name    string
		setup   func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter)
		wantErr error
		wantMsg string
	}{
		{
			name: "replica unreadable",
			setup: func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter) {
				r.EXPECT().ClientGroupID(gomock.Any()).Return("", errBoom)
			},
			wantErr: errBoom,
			wantMsg: "init replica",
		},
		{
			name: "cookie unreadable",
			setup: func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter) {
				r.EXPECT().ClientGroupID(gomock.Any()).Return("cg1", nil)
				r.EXPECT().Cookie(gomock.Any()).Return(nil, errBoom)
			},
			wantErr: errBoom,
			wantMsg: "read cookie",
		},
		{
			name: "server rejects",
			setup: func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter) {
				r.EXPECT().ClientGroupID(gomock.Any()).Return("cg1", nil)
				r.EXPECT().Cookie(gomock.Any()).Return(&cookie, nil)
				a.EXPECT().Pull(gomock.Any(), models.PullRequest{PullVersion: 1, ClientGroupID: "cg1", Cookie: &cookie}).
					Return(models.PullResponse{}, errBoom)
			},
			wantErr: errBoom,
			wantMsg: "pull from server",
		},
		{
			name: "malformed response",
			setup: func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter) {
				r.EXPECT().ClientGroupID(gomock.Any()).Return("cg1", nil)
				r.EXPECT().Cookie(gomock.Any()).Return(&cookie, nil)
				a.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{
					Cookie: 6,
					Patch:  []models.PatchOperation{{Op: "merge", Key: "list/l1"}},
				}, nil)
			},
			wantErr: ErrInvalidPullResponse,
			wantMsg: "invalid patch operation",
		},
		{
			name: "patch not applied",
			setup: func(r *mock.MockReplicaStorage, a *mock.MockServerAdapter) {
				resp := models.PullResponse{Cookie: 6}
				r.EXPECT().ClientGroupID(gomock.Any()).Return("", store.ErrReplicaNotInitialized)
				r.EXPECT().Init(gomock.Any(), "cg1").Return("cg1", nil)
				r.EXPECT().Cookie(gomock.Any()).Return(nil, nil)
				a.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(resp, nil)
				r.EXPECT().ApplyPatch(gomock.Any(), resp).Return(errBoom)
			},
			wantErr: errBoom,
			wantMsg: "apply patch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mock.NewMockReplicaStorage(ctrl)
			a := mock.NewMockServerAdapter(ctrl)
			tt.setup(r, a)

			svc := NewClientSyncService(r, a, config.ClientSync{ClientGroupID: "cg1"}, fixedIDs("x"), logger.Nop())
			err := svc.Pull(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
