// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-pay-trial/models"
)

// Keys under which the session manager keeps its state.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCreditCards = "creditCards"
)

// KeyValueStore is a text key-value store with no atomicity across keys.
// Get returns [ErrKeyNotFound] for a missing key. Remove of a missing key
// is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// AccountRepository reads and writes the whole account collection.
// Load returns [ErrKeyNotFound] when the collection has never been written.
type AccountRepository interface {
	Load(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, accounts []models.Account) error
}

// SessionRepository persists the single active session record.
type SessionRepository interface {
	Load(ctx context.Context) (models.Account, error)
	Save(ctx context.Context, account models.Account) error
	Clear(ctx context.Context) error
}

// PaymentInstrumentRepository persists the masked card collection.
type PaymentInstrumentRepository interface {
	Load(ctx context.Context) ([]models.PaymentInstrument, error)
	Append(ctx context.Context, instrument models.PaymentInstrument) error
}
