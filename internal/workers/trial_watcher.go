// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

const (
	titleTrialEnded = "Trial ended"
	bodyTrialEnded  = "Your trial has ended"
)

// TrialWatcher notifies once per account when the trial window of the
// active account has elapsed. It never changes account state.
type TrialWatcher struct {
	session  SessionSource
	notifier Notifier
	clock    Clock
	interval time.Duration

	mu       sync.Mutex
	notified map[string]struct{}

	logger *logger.Logger
}

func NewTrialWatcher(session SessionSource, notifier Notifier, clock Clock, interval time.Duration, logger *logger.Logger) *TrialWatcher {
	return &TrialWatcher{
		session:  session,
		notifier: notifier,
		clock:    clock,
		interval: interval,
		notified: make(map[string]struct{}),
		logger:   logger,
	}
}

// Run checks immediately and then on every tick until ctx is cancelled.
// A non-positive interval makes Run return at once.
func (w *TrialWatcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("trial watcher disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check emits the notification when due and reports whether it did.
func (w *TrialWatcher) Check(ctx context.Context) bool {
	account, ok := w.session.Current()
	if !ok {
		return false
	}

	now := w.clock.Now()
	if !account.TrialExpired(now) {
		return false
	}

	w.mu.Lock()
	if _, done := w.notified[account.ID]; done {
		w.mu.Unlock()
		return false
	}
	w.notified[account.ID] = struct{}{}
	w.mu.Unlock()

	w.logger.Info().
		Str("account_id", account.ID).
		Time("trial_end", *account.TrialEndDate).
		Msg("trial window elapsed")

	w.notifier.Notify(ctx, models.Notification{
		Title:    titleTrialEnded,
		Body:     bodyTrialEnded,
		Severity: models.SeverityInfo,
		At:       now,
	})
	return true
}
