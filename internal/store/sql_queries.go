package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	nextCVRVersion = `UPDATE client_groups
		SET cvr_version = cvr_version + 1, last_modified = now()
		WHERE id = $1
		RETURNING cvr_version;`
)

// buildEnsureClientGroupQuery inserts the group or touches the existing row,
// which locks it and makes RETURNING yield the stored owner.
func buildEnsureClientGroupQuery(clientGroupID, userID string) (string, []any, error) {
	return psql.
		Insert("client_groups").
		Columns("id", "user_id", "cvr_version", "last_modified").
		Values(clientGroupID, userID, 0, sq.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id RETURNING user_id").
		ToSql()
}

func buildSearchClientsQuery(clientGroupID string) (string, []any, error) {
	return psql.
		Select("id", "client_group_id", "last_mutation_id").
		From("clients").
		Where(sq.Eq{"client_group_id": clientGroupID}).
		OrderBy("id").
		ToSql()
}

// buildSearchListsQuery selects every list when ownerID is empty.
func buildSearchListsQuery(ownerID string) (string, []any, error) {
	query := psql.
		Select("id", "version").
		From("lists")

	if ownerID != "" {
		query = query.Where(sq.Eq{"owner_id": ownerID})
	}

	return query.OrderBy("id").ToSql()
}

func buildGetListsQuery(ids []string) (string, []any, error) {
	return psql.
		Select("id", "owner_id", "name").
		From("lists").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
}

func buildSearchTodosQuery(listIDs []string) (string, []any, error) {
	return psql.
		Select("id", "version").
		From("todos").
		Where(sq.Eq{"list_id": listIDs}).
		OrderBy("id").
		ToSql()
}

func buildGetTodosQuery(ids []string) (string, []any, error) {
	return psql.
		Select("id", "list_id", "text", "completed", "sort").
		From("todos").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
}
