package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/mock"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pullMocks struct {
	transactor *mock.MockTransactor
	groups     *mock.MockClientGroupRepository
	clients    *mock.MockClientRepository
	lists      *mock.MockListRepository
	todos      *mock.MockTodoRepository
	ex         *mock.MockExecutor
}

func newPullMocks(t *testing.T) (*pullMocks, PullService, *spyCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &pullMocks{
		transactor: mock.NewMockTransactor(ctrl),
		groups:     mock.NewMockClientGroupRepository(ctrl),
		clients:    mock.NewMockClientRepository(ctrl),
		lists:      mock.NewMockListRepository(ctrl),
		todos:      mock.NewMockTodoRepository(ctrl),
		ex:         mock.NewMockExecutor(ctrl),
	}

	c := newSpyCache()
	svc, err := NewPullService(&store.Storages{
		Transactor:            m.transactor,
		ClientGroupRepository: m.groups,
		ClientRepository:      m.clients,
		ListRepository:        m.lists,
		TodoRepository:        m.todos,
	}, c, logger.Nop(), NewListCollection(m.lists), NewTodoCollection(m.todos))
	require.NoError(t, err)

	return m, svc, c
}

// runInTx makes Transact run fn attempts times with the mock executor. Only
// the result of the last attempt counts, as if the earlier ones had failed to
// commit with a serialization error.
func (m *pullMocks) runInTx(attempts int) {
	m.transactor.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Executor) error) error {
			for i := 1; i < attempts; i++ {
				_ = fn(m.ex)
			}
			return fn(m.ex)
		})
}

func TestPull_Mocked_UsesTransactionExecutorInOrder(t *testing.T) {
	m, svc, c := newPullMocks(t)
	m.runInTx(1)

	gomock.InOrder(
		m.groups.EXPECT().EnsureClientGroup(gomock.Any(), m.ex, "cg1", "alice").Return("alice", nil),
		m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(7), nil),
		m.lists.EXPECT().SearchLists(gomock.Any(), m.ex, "alice").
			Return([]models.RecordMeta{{ID: "l1", Version: 1}}, nil),
		m.lists.EXPECT().GetLists(gomock.Any(), m.ex, []string{"l1"}).
			Return([]models.List{{ID: "l1", OwnerID: "alice", Name: "a"}}, nil),
		m.todos.EXPECT().SearchTodos(gomock.Any(), m.ex, []string{"l1"}).Return(nil, nil),
		m.clients.EXPECT().SearchClients(gomock.Any(), m.ex, "cg1").
			Return([]models.Client{{ID: "c1", ClientGroupID: "cg1", LastMutationID: 2}}, nil),
	)

	resp, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1", UserID: "alice"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.Cookie)
	assert.Equal(t, map[string]int64{"c1": 2}, resp.LastMutationIDChanges)
	assert.Equal(t, []models.PatchOperation{
		models.ClearOp(),
		models.PutOp("list/l1", models.List{ID: "l1", OwnerID: "alice", Name: "a"}),
	}, resp.Patch)
	assert.Equal(t, []int64{7}, c.puts)
}

func TestPull_Mocked_NoFetchWhenNothingChanged(t *testing.T) {
	m, svc, _ := newPullMocks(t)

	lists := []models.RecordMeta{{ID: "l1", Version: 3}}
	todos := []models.RecordMeta{{ID: "t1", Version: 5}, {ID: "t2", Version: 1}}

	m.runInTx(1)
	m.groups.EXPECT().EnsureClientGroup(gomock.Any(), m.ex, "cg1", "").Return("", nil).Times(2)
	m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(1), nil)
	m.lists.EXPECT().SearchLists(gomock.Any(), m.ex, "").Return(lists, nil).Times(2)
	m.todos.EXPECT().SearchTodos(gomock.Any(), m.ex, []string{"l1"}).Return(todos, nil).Times(2)
	m.clients.EXPECT().SearchClients(gomock.Any(), m.ex, "cg1").Return(nil, nil).Times(2)
	m.lists.EXPECT().GetLists(gomock.Any(), m.ex, []string{"l1"}).
		Return([]models.List{{ID: "l1"}}, nil).Times(1)
	m.todos.EXPECT().GetTodos(gomock.Any(), m.ex, []string{"t1", "t2"}).
		Return([]models.Todo{{ID: "t1"}, {ID: "t2"}}, nil).Times(1)

	first, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1"})
	require.NoError(t, err)

	m.runInTx(1)
	m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(2), nil)

	second, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1", Cookie: &first.Cookie})
	require.NoError(t, err)
	assert.Empty(t, second.Patch)
	assert.Equal(t, int64(2), second.Cookie)
}

func TestPull_Mocked_RetriedAttemptStartsFromScratch(t *testing.T) {
	m, svc, c := newPullMocks(t)

	m.runInTx(2)
	m.groups.EXPECT().EnsureClientGroup(gomock.Any(), m.ex, "cg1", "").Return("", nil).Times(2)
	m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(1), nil)
	m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(2), nil)
	m.lists.EXPECT().SearchLists(gomock.Any(), m.ex, "").
		Return([]models.RecordMeta{{ID: "l1", Version: 1}}, nil).Times(2)
	m.lists.EXPECT().GetLists(gomock.Any(), m.ex, []string{"l1"}).
		Return([]models.List{{ID: "l1"}}, nil).Times(2)
	m.todos.EXPECT().SearchTodos(gomock.Any(), m.ex, []string{"l1"}).Return(nil, nil).Times(2)
	m.clients.EXPECT().SearchClients(gomock.Any(), m.ex, "cg1").Return(nil, nil).Times(2)

	resp, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Cookie)
	assert.Len(t, resp.Patch, 2, "state of the first attempt must not leak into the response")
	assert.Equal(t, []int64{2}, c.puts)
}

func TestPull_Mocked_RetriesExhausted(t *testing.T) {
	m, svc, c := newPullMocks(t)

	m.transactor.EXPECT().Transact(gomock.Any(), gomock.Any()).Return(store.ErrRetryableTransaction)

	_, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1"})

	require.ErrorIs(t, err, store.ErrRetryableTransaction)
	assert.Empty(t, c.puts)
}

func TestPull_Mocked_FetchErrorAborts(t *testing.T) {
	m, svc, c := newPullMocks(t)

	m.runInTx(1)
	m.groups.EXPECT().EnsureClientGroup(gomock.Any(), m.ex, "cg1", "").Return("", nil)
	m.groups.EXPECT().NextCVRVersion(gomock.Any(), m.ex, "cg1").Return(int64(1), nil)
	m.lists.EXPECT().SearchLists(gomock.Any(), m.ex, "").
		Return([]models.RecordMeta{{ID: "l1", Version: 1}}, nil)
	m.lists.EXPECT().GetLists(gomock.Any(), m.ex, []string{"l1"}).Return(nil, store.ErrScanningRows)

	_, err := svc.Pull(context.Background(), models.PullRequest{ClientGroupID: "cg1"})

	require.ErrorIs(t, err, store.ErrScanningRows)
	assert.Empty(t, c.puts)
}
