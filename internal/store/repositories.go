// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/models"
)

type accountRepository struct {
	kv KeyValueStore
}

// NewAccountRepository stores the account collection as a JSON array under
// [KeyUsers].
func NewAccountRepository(kv KeyValueStore) AccountRepository {
	return &accountRepository{kv: kv}
}

func (r *accountRepository) Load(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := loadJSON(ctx, r.kv, KeyUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) Save(ctx context.Context, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	return saveJSON(ctx, r.kv, KeyUsers, accounts)
}

type sessionRepository struct {
	kv KeyValueStore
}

// NewSessionRepository stores the active account under [KeyCurrentUser].
func NewSessionRepository(kv KeyValueStore) SessionRepository {
	return &sessionRepository{kv: kv}
}

func (r *sessionRepository) Load(ctx context.Context) (models.Account, error) {
	var account models.Account
	if err := loadJSON(ctx, r.kv, KeyCurrentUser, &account); err != nil {
		return models.Account{}, err
	}
	if account.ID == "" {
		return models.Account{}, fmt.Errorf("%w: %s: missing id", ErrCorruptRecord, KeyCurrentUser)
	}
	return account, nil
}

func (r *sessionRepository) Save(ctx context.Context, account models.Account) error {
	return saveJSON(ctx, r.kv, KeyCurrentUser, account)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyCurrentUser)
}

type paymentInstrumentRepository struct {
	kv KeyValueStore
}

// NewPaymentInstrumentRepository stores masked cards as a JSON array under
// [KeyCreditCards].
func NewPaymentInstrumentRepository(kv KeyValueStore) PaymentInstrumentRepository {
	return &paymentInstrumentRepository{kv: kv}
}

func (r *paymentInstrumentRepository) Load(ctx context.Context) ([]models.PaymentInstrument, error) {
	var cards []models.PaymentInstrument
	if err := loadJSON(ctx, r.kv, KeyCreditCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Append adds instrument to the stored collection. A missing collection
// starts empty; a corrupt one is an error and is left untouched.
func (r *paymentInstrumentRepository) Append(ctx context.Context, instrument models.PaymentInstrument) error {
	cards, err := r.Load(ctx)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	cards = append(cards, instrument)
	return saveJSON(ctx, r.kv, KeyCreditCards, cards)
}

func loadJSON(ctx context.Context, kv KeyValueStore, key string, dst any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptRecord, key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, kv KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(data))
}
