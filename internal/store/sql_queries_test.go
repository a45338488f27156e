// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetValueQuery(t *testing.T) {
	query, args, err := buildGetValueQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), KeyUsers)
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM kv_entries WHERE key = $1", query)
	assert.Equal(t, []any{KeyUsers}, args)
}

func Test_buildUpsertValueQuery(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertValueQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), KeyCurrentUser, `{}`, at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into kv_entries")
	assert.Contains(t, q, "values (?,?,?)")
	assert.Contains(t, q, "on conflict (key) do update set value = excluded.value")
	assert.Equal(t, []any{KeyCurrentUser, `{}`, at}, args)
}

func Test_buildDeleteValueQuery(t *testing.T) {
	query, args, err := buildDeleteValueQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), KeyCreditCards)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_entries WHERE key = $1", query)
	assert.Equal(t, []any{KeyCreditCards}, args)
}
