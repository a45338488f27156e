// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

const (
	titleLoginOK       = "Login successful"
	titleLoginFailed   = "Login failed"
	titleSignupOK      = "Signup successful"
	titleSignupFailed  = "Signup failed"
	titleLoggedOut     = "Logged out"
	titleTrialStarted  = "Trial started"
	titleTrialFailed   = "Trial activation failed"
	bodyBadCredentials = "Invalid email or password"
	bodyEmailInUse     = "Email already in use"
	bodyLoggedOut      = "You have been logged out successfully"
	bodyTrialStarted   = "Your 30-day free trial is now active"
	bodyNotSignedIn    = "You must be logged in to start a trial"
	bodyTryAgain       = "Something went wrong. Please try again."
)

// notify hands a notification to the sink. A panicking sink is logged and
// never fails the calling operation.
func (m *Manager) notify(ctx context.Context, title, body string, severity models.Severity) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContextOr(ctx, m.logger).Error().
				Str("func", "Manager.notify").
				Str("title", title).
				Str("panic", fmt.Sprint(r)).
				Msg("notifier failed")
		}
	}()

	m.notifier.Notify(ctx, models.Notification{
		Title:    title,
		Body:     body,
		Severity: severity,
		At:       m.clock.Now(),
	})
}
