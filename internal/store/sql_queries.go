// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"

	columnName      = "name"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"

	upsertLocalStorageSuffix = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetItemsQuery selects name/value pairs for the given keys.
func buildGetItemsQuery(keys []string) (string, []any, error) {
	return sqlite.
		Select(columnName, columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnName: keys}).
		OrderBy(columnName).
		ToSql()
}

// buildSetItemsQuery builds one multi-row upsert for all items. Rows are
// emitted in key order so the statement is deterministic.
func buildSetItemsQuery(items map[string]string, now time.Time) (string, []any, error) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	insert := sqlite.
		Insert(localStorageTable).
		Columns(columnName, columnValue, columnUpdatedAt)
	for _, k := range keys {
		insert = insert.Values(k, items[k], now)
	}

	return insert.Suffix(upsertLocalStorageSuffix).ToSql()
}

// buildRemoveItemsQuery deletes all given keys in one statement.
func buildRemoveItemsQuery(keys []string) (string, []any, error) {
	return sqlite.
		Delete(localStorageTable).
		Where(sq.Eq{columnName: keys}).
		ToSql()
}
