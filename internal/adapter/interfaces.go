// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-pay-trial server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrPaymentRequired] for 402).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pay-trial/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
// Implementations are responsible for serialisation, bearer token handling,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when signed out.
	Token() string

	// Signup registers a new account. On success the issued token is stored
	// and the resulting session status returned. A taken email yields
	// [ErrConflict].
	Signup(ctx context.Context, req models.SignupRequest) (models.SessionStatus, error)

	// Login signs in with email and password. On success the issued token is
	// stored. Bad credentials yield [ErrUnauthorized].
	Login(ctx context.Context, req models.LoginRequest) (models.SessionStatus, error)

	// Logout ends the server session and forgets the token.
	Logout(ctx context.Context) error

	// Session fetches the current session status. It needs no token.
	Session(ctx context.Context) (models.SessionStatus, error)

	// StartTrial activates the trial with the given card. A rejected
	// activation yields [ErrPaymentRequired].
	StartTrial(ctx context.Context, card models.CardDetails) (models.SessionStatus, error)

	// Tools lists the dashboard tools with their lock state.
	Tools(ctx context.Context) ([]models.ToolAccess, error)

	// LaunchTool launches the named tool. A locked tool yields [ErrForbidden]
	// and an unknown one [ErrNotFound].
	LaunchTool(ctx context.Context, name string) error

	// Notifications returns up to limit recent notifications, newest first.
	// A non-positive limit returns all the server keeps.
	Notifications(ctx context.Context, limit int) ([]models.Notification, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
