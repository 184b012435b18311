// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

// Collection names, in the order their patch operations are emitted.
const (
	ListCollection = "list"
	TodoCollection = "todo"
)

// Scope describes who is pulling. Collections scanned earlier in the same
// pull publish the ids they made visible so that dependent collections can
// filter by them.
type Scope struct {
	ClientGroupID string
	UserID        string

	visible map[string][]string
}

// NewScope creates a scope for one pull.
func NewScope(clientGroupID, userID string) *Scope {
	return &Scope{
		ClientGroupID: clientGroupID,
		UserID:        userID,
		visible:       make(map[string][]string),
	}
}

// Visible returns the ids the named collection made visible in this pull.
func (s *Scope) Visible(collection string) []string {
	return s.visible[collection]
}

func (s *Scope) setVisible(collection string, metas []models.RecordMeta) {
	ids := make([]string, len(metas))
	for i, m := range metas {
		ids[i] = m.ID
	}
	s.visible[collection] = ids
}

type listCollection struct {
	repo store.ListRepository
}

// NewListCollection syncs the lists owned by the pulling user, or every list
// when the request is not authenticated.
func NewListCollection(repo store.ListRepository) Collection {
	return &listCollection{repo: repo}
}

func (c *listCollection) Name() string { return ListCollection }

func (c *listCollection) Scan(ctx context.Context, ex store.Executor, scope *Scope) ([]models.RecordMeta, error) {
	return c.repo.SearchLists(ctx, ex, scope.UserID)
}

func (c *listCollection) Fetch(ctx context.Context, ex store.Executor, ids []string) ([]models.Entry, error) {
	lists, err := c.repo.GetLists(ctx, ex, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, len(lists))
	for i, l := range lists {
		entries[i] = models.Entry{ID: l.ID, Value: l}
	}
	return entries, nil
}

type todoCollection struct {
	repo store.TodoRepository
}

// NewTodoCollection syncs the todos of the lists made visible by the list
// collection, so it must be registered after it.
func NewTodoCollection(repo store.TodoRepository) Collection {
	return &todoCollection{repo: repo}
}

func (c *todoCollection) Name() string { return TodoCollection }

func (c *todoCollection) Scan(ctx context.Context, ex store.Executor, scope *Scope) ([]models.RecordMeta, error) {
	return c.repo.SearchTodos(ctx, ex, scope.Visible(ListCollection))
}

func (c *todoCollection) Fetch(ctx context.Context, ex store.Executor, ids []string) ([]models.Entry, error) {
	todos, err := c.repo.GetTodos(ctx, ex, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, len(todos))
	for i, t := range todos {
		entries[i] = models.Entry{ID: t.ID, Value: t}
	}
	return entries, nil
}
