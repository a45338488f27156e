// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/notify"
	"github.com/MKhiriev/go-pay-trial/models"
)

type fakeSession struct {
	mu      sync.Mutex
	account *models.Account
}

func (s *fakeSession) Current() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return models.Account{}, false
	}
	return *s.account, true
}

func (s *fakeSession) set(a *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = a
}

type movingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *movingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *movingClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var trialStart = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func trialAccount(id string) *models.Account {
	a := models.Account{ID: id, Name: "Jane"}.WithTrial(trialStart)
	return &a
}

func TestTrialWatcher_NotifiesOncePerAccount(t *testing.T) {
	session := &fakeSession{account: trialAccount("acc-1")}
	clock := &movingClock{now: trialStart.Add(10 * 24 * time.Hour)}
	feed := notify.NewFeed(10)
	w := NewTrialWatcher(session, feed, clock, time.Minute, logger.Nop())
	ctx := context.Background()

	assert.False(t, w.Check(ctx), "trial still running")

	clock.set(trialStart.Add(models.TrialPeriod))
	assert.True(t, w.Check(ctx), "window elapsed exactly at end")
	assert.False(t, w.Check(ctx))
	assert.False(t, w.Check(ctx))

	recent := feed.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "Trial ended", recent[0].Title)
	assert.Equal(t, "Your trial has ended", recent[0].Body)
	assert.Equal(t, models.SeverityInfo, recent[0].Severity)

	current, _ := session.Current()
	assert.True(t, current.TrialActive, "state must not change")

	session.set(trialAccount("acc-2"))
	assert.True(t, w.Check(ctx), "another account is notified separately")
	assert.Len(t, feed.Recent(0), 2)
}

func TestTrialWatcher_NoSessionOrNoTrial(t *testing.T) {
	session := &fakeSession{}
	clock := &movingClock{now: trialStart.Add(365 * 24 * time.Hour)}
	feed := notify.NewFeed(10)
	w := NewTrialWatcher(session, feed, clock, time.Minute, logger.Nop())

	assert.False(t, w.Check(context.Background()))

	session.set(&models.Account{ID: "acc-1"})
	assert.False(t, w.Check(context.Background()))

	assert.Empty(t, feed.Recent(0))
}

func TestTrialWatcher_RunChecksOnTicks(t *testing.T) {
	session := &fakeSession{account: trialAccount("acc-1")}
	clock := &movingClock{now: trialStart}
	feed := notify.NewFeed(10)
	w := NewTrialWatcher(session, feed, clock, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	clock.set(trialStart.Add(models.TrialPeriod + time.Hour))

	require.Eventually(t, func() bool { return len(feed.Recent(0)) == 1 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Len(t, feed.Recent(0), 1)
}

func TestTrialWatcher_DisabledInterval(t *testing.T) {
	w := NewTrialWatcher(&fakeSession{}, notify.NewFeed(1), &movingClock{}, 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled watcher must return immediately")
	}
}
