// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

// Storages groups the key-value store with the typed repositories built on
// top of it.
type Storages struct {
	KV                 KeyValueStore
	Accounts           AccountRepository
	Session            SessionRepository
	PaymentInstruments PaymentInstrumentRepository

	closeFn func() error
}

// NewStoragesFromKV builds the repositories over an existing store.
func NewStoragesFromKV(kv KeyValueStore) *Storages {
	return &Storages{
		KV:                 kv,
		Accounts:           NewAccountRepository(kv),
		Session:            NewSessionRepository(kv),
		PaymentInstruments: NewPaymentInstrumentRepository(kv),
	}
}

// NewStorages initialises the store selected by cfg.Driver:
//   - memory: process-local map
//   - file: JSON document at cfg.Files.Path
//   - sqlite, postgres: kv_entries table, migrated on open
//   - s3: one object per key in cfg.S3.Bucket
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		kv      KeyValueStore
		closeFn func() error
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		kv = NewMemoryStore()
	case config.DriverFile:
		fileStore, err := NewFileStore(cfg.Files.Path)
		if err != nil {
			return nil, fmt.Errorf("file store error: %w", err)
		}
		kv = fileStore
	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLStore(db)
		closeFn = db.Close
	case config.DriverS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 client error: %w", err)
		}
		kv = NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	s := NewStoragesFromKV(kv)
	s.closeFn = closeFn
	return s, nil
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
