// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

func newTestSQLStore(t *testing.T, postgres bool) (*sqlStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var db *DB
	if postgres {
		db = newPostgresDB(conn, logger.Nop())
	} else {
		db = newSQLiteDB(conn, logger.Nop())
	}

	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSQLStore(db).(*sqlStore)
	s.now = func() time.Time { return fixed }
	return s, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	selectValueSQL = regexp.QuoteMeta("SELECT value FROM kv_entries WHERE key = $1")
	upsertValueSQL = `INSERT INTO kv_entries \(key,value,updated_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(key\) DO UPDATE`
	deleteValueSQL = regexp.QuoteMeta("DELETE FROM kv_entries WHERE key = $1")
)

func TestSQLStore_Get_Success(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectQuery(selectValueSQL).
		WithArgs(KeyUsers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	got, err := s.Get(context.Background(), KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectQuery(selectValueSQL).
		WithArgs(KeyCurrentUser).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), KeyCurrentUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_RetriesRetryableError(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectQuery(selectValueSQL).
		WithArgs(KeyUsers).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(selectValueSQL).
		WithArgs(KeyUsers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`))

	got, err := s.Get(context.Background(), KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_GivesUpAfterMaxAttempts(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	for i := 0; i < maxSQLAttempts; i++ {
		mock.ExpectQuery(selectValueSQL).
			WithArgs(KeyUsers).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := s.Get(context.Background(), KeyUsers)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_Upsert(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectExec(upsertValueSQL).
		WithArgs(KeyUsers, `[]`, s.now()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), KeyUsers, `[]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_NonRetryableNotRetried(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectExec(upsertValueSQL).
		WithArgs(KeyUsers, `[]`, sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := s.Set(context.Background(), KeyUsers, `[]`)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_ContextCancelledDuringBackoff(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectExec(upsertValueSQL).
		WithArgs(KeyUsers, `[]`, sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Set(ctx, KeyUsers, `[]`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLStore_Remove(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectExec(deleteValueSQL).
		WithArgs(KeyCurrentUser).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), KeyCurrentUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Remove_Error(t *testing.T) {
	s, mock := newTestSQLStore(t, true)

	mock.ExpectExec(deleteValueSQL).
		WithArgs(KeyCurrentUser).
		WillReturnError(errors.New("db down"))

	err := s.Remove(context.Background(), KeyCurrentUser)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLStore_SQLiteUsesQuestionPlaceholders(t *testing.T) {
	s, mock := newTestSQLStore(t, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_entries WHERE key = ?")).
		WithArgs(KeyCreditCards).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), KeyCreditCards)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
