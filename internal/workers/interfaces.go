// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the server and a Workers
// aggregate that runs them for the lifetime of a context.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pay-trial/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// SessionSource exposes the active account.
type SessionSource interface {
	Current() (models.Account, bool)
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
