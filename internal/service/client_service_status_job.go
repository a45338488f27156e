// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

const (
	defaultStatusPollInterval = 5 * time.Second
	statusPollNotifications   = 5
)

type clientStatusJob struct {
	session   ClientSessionService
	dashboard ClientDashboardService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientStatusJob creates a clientStatusJob that polls the session status
// and the latest notifications on a ticker. The job is idle until Start is
// called.
func NewClientStatusJob(session ClientSessionService, dashboard ClientDashboardService) ClientStatusJob {
	return &clientStatusJob{session: session, dashboard: dashboard}
}

// Start implements ClientStatusJob. It stops any previously running job, then
// launches a background goroutine that polls every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientStatusJob) Start(ctx context.Context, interval time.Duration, onUpdate func(StatusUpdate)) {
	if interval <= 0 {
		interval = defaultStatusPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				update := j.poll(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				onUpdate(update)
			}
		}
	}()
}

func (j *clientStatusJob) poll(ctx context.Context) StatusUpdate {
	status, err := j.session.Status(ctx)
	if err != nil {
		return StatusUpdate{Err: err}
	}

	notifications, err := j.dashboard.Notifications(ctx, statusPollNotifications)
	return StatusUpdate{Status: status, Notifications: notifications, Err: err}
}

// Stop implements ClientStatusJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientStatusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
