// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pay-trial/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=Notifier,Clock

// AuthService issues and verifies the bearer tokens handed out after a
// successful login or signup.
type AuthService interface {
	// CreateToken signs a token whose subject is accountID.
	CreateToken(ctx context.Context, accountID string) (models.Token, error)
	// ParseToken verifies signature, issuer and expiry of tokenString.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ToolService gates the dashboard tool catalogue behind the trial.
type ToolService interface {
	// ListTools returns the whole catalogue with Locked computed for the
	// current session.
	ListTools(ctx context.Context) []models.ToolAccess
	// LaunchTool returns ErrToolNotFound or ErrPremiumRequired when the tool
	// cannot be launched. Both outcomes that reach a known tool notify.
	LaunchTool(ctx context.Context, name string) error
}

// PremiumChecker reports whether premium features are unlocked.
type PremiumChecker interface {
	CanAccessPremium() bool
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
