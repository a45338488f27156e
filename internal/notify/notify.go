// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify contains the sinks user-visible notifications are delivered
// to: the structured log, an in-memory feed read by clients, and a fan-out
// that combines several sinks.
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

// Notifier receives notifications. Implementations must not block for long
// and have no way to report failure back to the sender.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// LogNotifier writes every notification to the log.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (l *LogNotifier) Notify(ctx context.Context, n models.Notification) {
	log := logger.FromContextOr(ctx, l.logger)

	var event *zerolog.Event
	if n.Severity == models.SeverityError {
		event = log.Warn()
	} else {
		event = log.Info()
	}

	event.
		Str("title", n.Title).
		Str("body", n.Body).
		Str("severity", string(n.Severity)).
		Msg("notification")
}

// DefaultFeedSize is the number of notifications a [Feed] keeps.
const DefaultFeedSize = 50

// Feed keeps the most recent notifications in a fixed-size ring.
type Feed struct {
	mu    sync.RWMutex
	items []models.Notification
	next  int
	full  bool
}

// NewFeed returns a feed holding up to size notifications. A non-positive
// size falls back to [DefaultFeedSize].
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{items: make([]models.Notification, size)}
}

func (f *Feed) Notify(_ context.Context, n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[f.next] = n
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to n notifications, newest first. n <= 0 returns all
// that are kept.
func (f *Feed) Recent(n int) []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := f.next
	if f.full {
		count = len(f.items)
	}
	if n <= 0 || n > count {
		n = count
	}

	out := make([]models.Notification, 0, n)
	for i := 1; i <= n; i++ {
		idx := (f.next - i + len(f.items)) % len(f.items)
		out = append(out, f.items[idx])
	}
	return out
}

// Fanout delivers each notification to every sink in order. A panicking
// sink is recovered and logged; the remaining sinks still receive the
// notification.
type Fanout struct {
	sinks  []Notifier
	logger *logger.Logger
}

func NewFanout(log *logger.Logger, sinks ...Notifier) *Fanout {
	return &Fanout{sinks: sinks, logger: log}
}

func (f *Fanout) Notify(ctx context.Context, n models.Notification) {
	for i, sink := range f.sinks {
		f.deliver(ctx, i, sink, n)
	}
}

func (f *Fanout) deliver(ctx context.Context, idx int, sink Notifier, n models.Notification) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContextOr(ctx, f.logger).Error().
				Str("func", "Fanout.Notify").
				Int("sink", idx).
				Str("panic", fmt.Sprint(r)).
				Msg("notification sink panicked")
		}
	}()

	sink.Notify(ctx, n)
}
