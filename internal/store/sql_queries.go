// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable = "kv_store"

	// tokenKey is the only row the client ever writes.
	tokenKey = "token"
)

func selectValueQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// upsertValueQuery keeps at most one row per name.
func upsertValueQuery(name, value string, at time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("name", "value", "updated_at").
		Values(name, value, at.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteValueQuery(name string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
