// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pay-trial/models"
)

// ClientSessionService defines the client-side contract for account and
// trial operations. Implementations talk to the server through an adapter
// and translate transport errors into the service errors of this package.
type ClientSessionService interface {
	// Signup registers a new account and signs it in.
	// Returns [ErrSignupRejected] when the server refuses the signup.
	Signup(ctx context.Context, req models.SignupRequest) (models.SessionStatus, error)

	// Login signs in with email and password.
	// Returns [ErrInvalidCredentials] when no account matches.
	Login(ctx context.Context, req models.LoginRequest) (models.SessionStatus, error)

	// Logout ends the session. The local token is dropped even when the
	// server call fails.
	Logout(ctx context.Context) error

	// Status returns the current session snapshot.
	Status(ctx context.Context) (models.SessionStatus, error)

	// StartTrial activates the trial with the given card.
	// Returns [ErrTrialActivationFailed] when the server rejects it.
	StartTrial(ctx context.Context, card models.CardDetails) (models.SessionStatus, error)

	// SignedIn reports whether a bearer token is held.
	SignedIn() bool
}

// ClientDashboardService defines the client-side contract for the dashboard.
type ClientDashboardService interface {
	// Tools lists the tool catalogue with its lock state.
	Tools(ctx context.Context) ([]models.ToolAccess, error)

	// LaunchTool launches a tool by name.
	// Returns [ErrPremiumRequired] for a locked tool and [ErrToolNotFound]
	// for an unknown one.
	LaunchTool(ctx context.Context, name string) error

	// Notifications returns up to limit recent notifications, newest first.
	Notifications(ctx context.Context, limit int) ([]models.Notification, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// StatusUpdate is one poll result delivered by [ClientStatusJob].
type StatusUpdate struct {
	Status        models.SessionStatus
	Notifications []models.Notification
	Err           error
}

// ClientStatusJob defines the contract for a background worker that polls
// the session status and the notification feed.
type ClientStatusJob interface {
	// Start launches the polling goroutine. It polls every interval,
	// defaulting to 5 seconds if interval is zero or negative, and hands
	// every result to onUpdate. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration, onUpdate func(StatusUpdate))

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()
}
