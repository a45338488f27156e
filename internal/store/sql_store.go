// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

const (
	maxSQLAttempts = 3
	retryBaseDelay = 50 * time.Millisecond
)

// sqlStore is the [KeyValueStore] over the kv_entries table. It works with
// both PostgreSQL and SQLite; the dialect only changes placeholders and the
// error classifier.
type sqlStore struct {
	*DB
	now func() time.Time
}

// NewSQLStore wraps an opened and migrated [DB].
func NewSQLStore(db *DB) KeyValueStore {
	return &sqlStore{
		DB:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildGetValueQuery(s.builder(), key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildUpsertValueQuery(s.builder(), key, value, s.now())
	if err != nil {
		return err
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlStore.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildDeleteValueQuery(s.builder(), key)
	if err != nil {
		return err
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlStore.Remove").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// withRetry runs op up to maxSQLAttempts times while the classifier reports
// the failure as retryable.
func (s *sqlStore) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxSQLAttempts; attempt++ {
		err = op()
		if err == nil || s.errorClassificator == nil || s.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxSQLAttempts {
			break
		}

		s.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBaseDelay):
		}
	}

	return err
}
