// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/session_collaborators_mock.go -package=mock

package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pay-trial/models"
)

// Notifier receives user-visible notifications. Delivery is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// IDGenerator produces a globally unique string per call.
type IDGenerator interface {
	Generate() string
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Listener is called with the active account after every session change,
// or with nil once the session has ended.
type Listener func(account *models.Account)
