package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

type clientReplicaService struct {
	replica store.ReplicaStorage
}

// NewClientReplicaService decodes replica entries back into domain rows.
func NewClientReplicaService(replica store.ReplicaStorage) ClientReplicaService {
	return &clientReplicaService{replica: replica}
}

func (s *clientReplicaService) Lists(ctx context.Context) ([]models.List, error) {
	return scanCollection[models.List](ctx, s.replica, ListCollection)
}

func (s *clientReplicaService) Todos(ctx context.Context, listID string) ([]models.Todo, error) {
	all, err := scanCollection[models.Todo](ctx, s.replica, TodoCollection)
	if err != nil {
		return nil, err
	}

	todos := all[:0]
	for _, t := range all {
		if listID == "" || t.ListID == listID {
			todos = append(todos, t)
		}
	}
	sort.SliceStable(todos, func(i, j int) bool { return todos[i].Sort < todos[j].Sort })

	return todos, nil
}

func (s *clientReplicaService) Todo(ctx context.Context, id string) (models.Todo, bool, error) {
	raw, ok, err := s.replica.Get(ctx, patchKey(TodoCollection, id))
	if err != nil || !ok {
		return models.Todo{}, false, err
	}

	var todo models.Todo
	if err = json.Unmarshal(raw, &todo); err != nil {
		return models.Todo{}, false, fmt.Errorf("decode %s: %w", patchKey(TodoCollection, id), err)
	}

	return todo, true, nil
}

func (s *clientReplicaService) LastMutationIDs(ctx context.Context) (map[string]int64, error) {
	return s.replica.LastMutationIDs(ctx)
}

func scanCollection[T any](ctx context.Context, replica store.ReplicaStorage, collection string) ([]T, error) {
	entries, err := replica.Scan(ctx, collection+"/")
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err = json.Unmarshal(e.Value, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, v)
	}

	return out, nil
}
