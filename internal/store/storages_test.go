// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.Accounts)
	require.NotNil(t, s.Session)
	require.NotNil(t, s.PaymentInstruments)
	assert.NoError(t, s.Close())
}

func TestNewStorages_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewStorages(context.Background(), config.Storage{
		Driver: config.DriverFile,
		Files:  config.Files{Path: path},
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.KV.Set(context.Background(), KeyUsers, "[]"))
	assert.FileExists(t, path)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Driver: "redis"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStorages_SQLite(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{
		Driver: config.DriverSQLite,
		DB:     config.DB{DSN: filepath.Join(t.TempDir(), "pay-trial.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	runKeyValueStoreContract(t, s.KV)
}
