// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the single-user session and trial lifecycle:
// signup, login, logout and the 30-day trial activation with a masked card.
//
// All state lives in a key-value store (see package store). Operations
// report their outcome as a bool plus a notification; no error escapes to
// the caller.
//
// The in-memory fields are mutex-guarded, but the read-modify-write of the
// stored collections is not serialised: two concurrent Signup calls both
// read the collection, both append, and the later write wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/store"
	"github.com/MKhiriev/go-pay-trial/models"
)

// Manager owns the active session and the in-memory copy of the account
// collection.
type Manager struct {
	accounts store.AccountRepository
	sessions store.SessionRepository
	cards    store.PaymentInstrumentRepository

	notifier Notifier
	ids      IDGenerator
	clock    Clock
	logger   *logger.Logger

	seed []models.Account

	mu        sync.RWMutex
	current   *models.Account
	users     []models.Account
	listeners map[int]Listener
	nextID    int
}

// NewManager wires a Manager to its collaborators. seed is written to the
// account collection by [Manager.Initialize] when no collection is stored yet.
func NewManager(
	storages *store.Storages,
	notifier Notifier,
	ids IDGenerator,
	clock Clock,
	log *logger.Logger,
	seed ...models.Account,
) *Manager {
	return &Manager{
		accounts:  storages.Accounts,
		sessions:  storages.Session,
		cards:     storages.PaymentInstruments,
		notifier:  notifier,
		ids:       ids,
		clock:     clock,
		logger:    log,
		seed:      seed,
		listeners: make(map[int]Listener),
	}
}

// Initialize resolves the initial state from the store. A stored session
// becomes active; a malformed one is discarded and removed. Nothing is
// reported to the caller.
func (m *Manager) Initialize(ctx context.Context) {
	log := logger.FromContextOr(ctx, m.logger)

	m.initAccounts(ctx)

	var current *models.Account
	account, err := m.sessions.Load(ctx)
	switch {
	case err == nil:
		current = &account
		log.Debug().Str("account_id", account.ID).Msg("session restored")
	case errors.Is(err, store.ErrKeyNotFound):
	case errors.Is(err, store.ErrCorruptRecord):
		log.Warn().Err(err).Str("func", "Manager.Initialize").Msg("discarding malformed session record")
		if clearErr := m.sessions.Clear(ctx); clearErr != nil {
			log.Err(clearErr).Str("func", "Manager.Initialize").Msg("failed to remove malformed session record")
		}
	default:
		log.Err(err).Str("func", "Manager.Initialize").Msg("failed to read session record")
	}

	m.mu.Lock()
	m.current = current
	m.mu.Unlock()

	m.broadcast(current)
}

func (m *Manager) initAccounts(ctx context.Context) {
	log := logger.FromContextOr(ctx, m.logger)

	users, err := m.accounts.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrKeyNotFound):
		users = cloneAccounts(m.seed)
		if len(users) > 0 {
			if saveErr := m.accounts.Save(ctx, users); saveErr != nil {
				log.Err(saveErr).Str("func", "Manager.Initialize").Msg("failed to write seed accounts")
			} else {
				log.Info().Int("count", len(users)).Msg("seed accounts written")
			}
		}
	default:
		log.Err(err).Str("func", "Manager.Initialize").Msg("failed to read accounts, keeping in-memory copy")
		return
	}

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()
}

// Login activates the account whose email and secret both match exactly.
func (m *Manager) Login(ctx context.Context, email, secret string) bool {
	log := logger.FromContextOr(ctx, m.logger)

	users := m.loadAccounts(ctx)
	for _, user := range users {
		if user.Email != email || user.Password != secret {
			continue
		}

		m.activate(ctx, user)
		log.Info().Str("account_id", user.ID).Msg("login successful")
		m.notify(ctx, titleLoginOK, fmt.Sprintf("Welcome back, %s!", user.Name), models.SeveritySuccess)
		return true
	}

	log.Info().Msg("login rejected")
	m.notify(ctx, titleLoginFailed, bodyBadCredentials, models.SeverityError)
	return false
}

// Signup registers a new account and activates it. An email already present
// in the collection (exact match) is rejected and nothing is written.
func (m *Manager) Signup(ctx context.Context, name, email, secret string) bool {
	log := logger.FromContextOr(ctx, m.logger)

	users := m.loadAccounts(ctx)
	for _, user := range users {
		if user.Email == email {
			log.Info().Msg("signup rejected: email in use")
			m.notify(ctx, titleSignupFailed, bodyEmailInUse, models.SeverityError)
			return false
		}
	}

	account := models.Account{
		ID:        m.ids.Generate(),
		Name:      name,
		Email:     email,
		Password:  secret,
		CreatedAt: m.clock.Now(),
	}

	updated := append(cloneAccounts(users), account)
	if err := m.accounts.Save(ctx, updated); err != nil {
		log.Err(err).Str("func", "Manager.Signup").Msg("failed to persist accounts")
		m.notify(ctx, titleSignupFailed, bodyTryAgain, models.SeverityError)
		return false
	}

	m.mu.Lock()
	m.users = updated
	m.mu.Unlock()

	m.activate(ctx, account)
	log.Info().Str("account_id", account.ID).Msg("signup successful")
	m.notify(ctx, titleSignupOK, fmt.Sprintf("Welcome, %s!", name), models.SeveritySuccess)
	return true
}

// StartTrial stores the masked card and opens a 30-day trial window for the
// active account. Steps are not rolled back when a later one fails.
func (m *Manager) StartTrial(ctx context.Context, details models.CardDetails) bool {
	log := logger.FromContextOr(ctx, m.logger)

	account, ok := m.Current()
	if !ok {
		log.Info().Msg("trial rejected: no active session")
		m.notify(ctx, titleTrialFailed, bodyNotSignedIn, models.SeverityError)
		return false
	}

	updated, err := m.startTrial(ctx, account, details)
	if err != nil {
		log.Err(err).
			Str("func", "Manager.StartTrial").
			Str("account_id", account.ID).
			Msg("trial activation failed")
		m.notify(ctx, titleTrialFailed, bodyTryAgain, models.SeverityError)
		return false
	}

	m.mu.Lock()
	m.current = &updated
	m.mu.Unlock()
	m.broadcast(&updated)

	log.Info().
		Str("account_id", updated.ID).
		Time("trial_end", *updated.TrialEndDate).
		Msg("trial started")
	m.notify(ctx, titleTrialStarted, bodyTrialStarted, models.SeveritySuccess)
	return true
}

func (m *Manager) startTrial(ctx context.Context, account models.Account, details models.CardDetails) (updated models.Account, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during trial activation: %v", r)
		}
	}()

	instrument := models.PaymentInstrument{
		UserID:     account.ID,
		CardNumber: MaskCardNumber(details.CardNumber),
		NameOnCard: details.NameOnCard,
		ExpiryDate: details.ExpiryDate,
		CVV:        MaskCVV(details.CVV),
	}
	if err := m.cards.Append(ctx, instrument); err != nil {
		return models.Account{}, fmt.Errorf("error saving payment instrument: %w", err)
	}

	updated = account.WithTrial(m.clock.Now())

	users := cloneAccounts(m.loadAccounts(ctx))
	for i := range users {
		if users[i].ID == updated.ID {
			users[i] = updated
		}
	}
	if err := m.accounts.Save(ctx, users); err != nil {
		return models.Account{}, fmt.Errorf("error saving accounts: %w", err)
	}

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()

	if err := m.sessions.Save(ctx, updated); err != nil {
		return models.Account{}, fmt.Errorf("error saving session: %w", err)
	}

	return updated, nil
}

// Logout ends the session. It is idempotent apart from the notification.
func (m *Manager) Logout(ctx context.Context) {
	log := logger.FromContextOr(ctx, m.logger)

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.sessions.Clear(ctx); err != nil {
		log.Err(err).Str("func", "Manager.Logout").Msg("failed to remove session record")
	}

	m.broadcast(nil)
	m.notify(ctx, titleLoggedOut, bodyLoggedOut, models.SeverityInfo)
}

// Current returns a copy of the active account.
func (m *Manager) Current() (models.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.Account{}, false
	}
	return *m.current, true
}

// State reports which state of the session state machine is active.
func (m *Manager) State() models.SessionState {
	if _, ok := m.Current(); ok {
		return models.StateAuthenticated
	}
	return models.StateAnonymous
}

// Status is a snapshot for presentation. The account is returned without
// its password.
func (m *Manager) Status() models.SessionStatus {
	account, ok := m.Current()
	if !ok {
		return models.SessionStatus{State: models.StateAnonymous}
	}

	redacted := account.Redacted()
	return models.SessionStatus{
		State:              models.StateAuthenticated,
		Account:            &redacted,
		TrialActive:        account.TrialActive,
		TrialDaysRemaining: account.TrialDaysRemaining(m.clock.Now()),
		CanAccessPremium:   account.TrialActive,
	}
}

// CanAccessPremium reports whether the active account has an active trial.
func (m *Manager) CanAccessPremium() bool {
	account, ok := m.Current()
	return ok && account.TrialActive
}

// Accounts returns the known accounts without passwords.
func (m *Manager) Accounts(ctx context.Context) []models.Account {
	users := m.loadAccounts(ctx)
	out := make([]models.Account, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	return out
}

// Subscribe registers fn for session changes and returns a func that
// removes it.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

func (m *Manager) activate(ctx context.Context, account models.Account) {
	m.mu.Lock()
	m.current = &account
	m.mu.Unlock()

	if err := m.sessions.Save(ctx, account); err != nil {
		logger.FromContextOr(ctx, m.logger).Err(err).
			Str("func", "Manager.activate").
			Str("account_id", account.ID).
			Msg("failed to persist session")
	}

	m.broadcast(&account)
}

// loadAccounts reads the stored collection, falling back to the in-memory
// copy when it is absent or unreadable.
func (m *Manager) loadAccounts(ctx context.Context) []models.Account {
	users, err := m.accounts.Load(ctx)
	if err == nil {
		m.mu.Lock()
		m.users = users
		m.mu.Unlock()
		return users
	}

	if !errors.Is(err, store.ErrKeyNotFound) {
		logger.FromContextOr(ctx, m.logger).Warn().Err(err).
			Str("func", "Manager.loadAccounts").
			Msg("using in-memory accounts")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAccounts(m.users)
}

func (m *Manager) broadcast(account *models.Account) {
	m.mu.RLock()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.RUnlock()

	for _, l := range listeners {
		var arg *models.Account
		if account != nil {
			cp := *account
			arg = &cp
		}
		l(arg)
	}
}

func cloneAccounts(in []models.Account) []models.Account {
	if in == nil {
		return nil
	}
	out := make([]models.Account, len(in))
	copy(out, in)
	return out
}
