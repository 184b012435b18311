package service

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

// memStore is an in-memory stand-in for the Postgres repositories. Every
// Transact holds the lock for its whole duration, which gives the same
// isolation the serializable transaction gives in production.
type memStore struct {
	mu sync.Mutex

	groups  map[string]int64
	owners  map[string]string
	clients map[string][]models.Client
	lists   map[string]listRow
	todos   map[string]todoRow

	fetches     map[string][][]string
	failOn      string
	dropOnFetch string
}

type listRow struct {
	list    models.List
	version int64
}

type todoRow struct {
	todo    models.Todo
	version int64
}

func newMemStore() *memStore {
	return &memStore{
		groups:  make(map[string]int64),
		owners:  make(map[string]string),
		clients: make(map[string][]models.Client),
		lists:   make(map[string]listRow),
		todos:   make(map[string]todoRow),
		fetches: make(map[string][][]string),
	}
}

func (m *memStore) storages() *store.Storages {
	return &store.Storages{
		Transactor:            m,
		ClientGroupRepository: m,
		ClientRepository:      m,
		ListRepository:        m,
		TodoRepository:        m,
	}
}

func (m *memStore) putList(l models.List) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.lists[l.ID]
	m.lists[l.ID] = listRow{list: l, version: r.version + 1}
}

func (m *memStore) putTodo(t models.Todo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.todos[t.ID]
	m.todos[t.ID] = todoRow{todo: t, version: r.version + 1}
}

func (m *memStore) deleteList(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lists, id)
	for tid, t := range m.todos {
		if t.todo.ListID == id {
			delete(m.todos, tid)
		}
	}
}

func (m *memStore) deleteTodo(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.todos, id)
}

func (m *memStore) setClient(c models.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cs := m.clients[c.ClientGroupID]
	for i := range cs {
		if cs[i].ID == c.ID {
			cs[i] = c
			return
		}
	}
	m.clients[c.ClientGroupID] = append(cs, c)
}

func (m *memStore) fetchCalls(collection string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[collection]
}

func (m *memStore) Transact(ctx context.Context, fn func(ex store.Executor) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(nil)
}

func (m *memStore) EnsureClientGroup(ctx context.Context, ex store.Executor, clientGroupID, userID string) (string, error) {
	if m.failOn == "EnsureClientGroup" {
		return "", errStorage
	}
	if _, ok := m.groups[clientGroupID]; !ok {
		m.groups[clientGroupID] = 0
		m.owners[clientGroupID] = userID
	}
	return m.owners[clientGroupID], nil
}

func (m *memStore) NextCVRVersion(ctx context.Context, ex store.Executor, clientGroupID string) (int64, error) {
	m.groups[clientGroupID]++
	return m.groups[clientGroupID], nil
}

func (m *memStore) SearchClients(ctx context.Context, ex store.Executor, clientGroupID string) ([]models.Client, error) {
	if m.failOn == "SearchClients" {
		return nil, errStorage
	}
	return append([]models.Client(nil), m.clients[clientGroupID]...), nil
}

func (m *memStore) SearchLists(ctx context.Context, ex store.Executor, ownerID string) ([]models.RecordMeta, error) {
	var metas []models.RecordMeta
	for id, r := range m.lists {
		if ownerID == "" || r.list.OwnerID == ownerID {
			metas = append(metas, models.RecordMeta{ID: id, Version: r.version})
		}
	}
	sortMetas(metas)
	return metas, nil
}

func (m *memStore) GetLists(ctx context.Context, ex store.Executor, ids []string) ([]models.List, error) {
	m.fetches[ListCollection] = append(m.fetches[ListCollection], append([]string(nil), ids...))
	var out []models.List
	for _, id := range sortedIDs(ids) {
		if id == m.dropOnFetch {
			continue
		}
		if r, ok := m.lists[id]; ok {
			out = append(out, r.list)
		}
	}
	return out, nil
}

func (m *memStore) SearchTodos(ctx context.Context, ex store.Executor, listIDs []string) ([]models.RecordMeta, error) {
	if m.failOn == "SearchTodos" {
		return nil, errStorage
	}
	visible := make(map[string]bool, len(listIDs))
	for _, id := range listIDs {
		visible[id] = true
	}

	var metas []models.RecordMeta
	for id, r := range m.todos {
		if visible[r.todo.ListID] {
			metas = append(metas, models.RecordMeta{ID: id, Version: r.version})
		}
	}
	sortMetas(metas)
	return metas, nil
}

func (m *memStore) GetTodos(ctx context.Context, ex store.Executor, ids []string) ([]models.Todo, error) {
	m.fetches[TodoCollection] = append(m.fetches[TodoCollection], append([]string(nil), ids...))
	var out []models.Todo
	for _, id := range sortedIDs(ids) {
		if id == m.dropOnFetch {
			continue
		}
		if r, ok := m.todos[id]; ok {
			out = append(out, r.todo)
		}
	}
	return out, nil
}

func sortMetas(metas []models.RecordMeta) {
	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })
}

func sortedIDs(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
