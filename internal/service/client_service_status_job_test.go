// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pay-trial/models"
)

// spySessionService считает вызовы Status и позволяет вернуть ошибку.
type spySessionService struct {
	ClientSessionService
	calls atomic.Int64
	err   error
}

func (s *spySessionService) Status(context.Context) (models.SessionStatus, error) {
	s.calls.Add(1)
	return models.SessionStatus{State: models.StateAuthenticated, TrialActive: true}, s.err
}

type stubDashboardService struct {
	ClientDashboardService
}

func (stubDashboardService) Notifications(_ context.Context, limit int) ([]models.Notification, error) {
	return []models.Notification{{Title: "Trial ended"}}, nil
}

type updateRecorder struct {
	mu      sync.Mutex
	updates []StatusUpdate
}

func (r *updateRecorder) record(u StatusUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *updateRecorder) snapshot() []StatusUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StatusUpdate(nil), r.updates...)
}

func TestClientStatusJob_Start_DeliversUpdates(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientStatusJob(spy, stubDashboardService{})
	rec := &updateRecorder{}

	// Интервал 10ms - за 55ms должно быть несколько тиков
	job.Start(context.Background(), 10*time.Millisecond, rec.record)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	updates := rec.snapshot()
	require.GreaterOrEqual(t, len(updates), 3, "updates delivered: %d", len(updates))
	assert.NoError(t, updates[0].Err)
	assert.True(t, updates[0].Status.TrialActive)
	assert.Equal(t, "Trial ended", updates[0].Notifications[0].Title)
}

func TestClientStatusJob_StatusError(t *testing.T) {
	spy := &spySessionService{err: errors.New("server down")}
	job := NewClientStatusJob(spy, stubDashboardService{})
	rec := &updateRecorder{}

	job.Start(context.Background(), 10*time.Millisecond, rec.record)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	updates := rec.snapshot()
	require.NotEmpty(t, updates)
	assert.EqualError(t, updates[0].Err, "server down")
	assert.Nil(t, updates[0].Notifications)
}

func TestClientStatusJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientStatusJob(spy, stubDashboardService{})

	job.Start(context.Background(), 10*time.Millisecond, func(StatusUpdate) {})
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientStatusJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientStatusJob(&spySessionService{}, stubDashboardService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientStatusJob_Restart(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientStatusJob(spy, stubDashboardService{})
	ctx := context.Background()

	job.Start(ctx, time.Hour, func(StatusUpdate) {})
	// повторный Start останавливает предыдущую горутину
	job.Start(ctx, 10*time.Millisecond, func(StatusUpdate) {})
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, spy.calls.Load())
}

func TestClientStatusJob_ContextCancel(t *testing.T) {
	spy := &spySessionService{}
	job := NewClientStatusJob(spy, stubDashboardService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, func(StatusUpdate) {})
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}
