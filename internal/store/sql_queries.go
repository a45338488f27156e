// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable         = "kv_entries"
	kvKeyColumn     = "key"
	kvValueColumn   = "value"
	kvUpdatedColumn = "updated_at"

	kvUpsertSuffix = "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"
)

func buildGetValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertValueQuery(b sq.StatementBuilderType, key, value string, at time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedColumn).
		Values(key, value, at).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
