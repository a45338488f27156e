// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageSignup    = "signup"
	pageDashboard = "dashboard"
	pageTrial     = "trial"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the login and signup pages.
type AuthResult struct {
	Status models.SessionStatus
	Err    error
	Email  string
}

// SessionChanged carries a fresh session snapshot to the dashboard.
type SessionChanged struct {
	Status models.SessionStatus
}

// TrialResult is produced by the trial page.
type TrialResult struct {
	Status models.SessionStatus
	Err    error
}

// LogoutNotice is delivered to the menu after a logout.
type LogoutNotice struct {
	Err error
}

type statusUpdateMsg service.StatusUpdate

type toolsLoadedMsg struct {
	tools []models.ToolAccess
	err   error
}

type toolLaunchedMsg struct {
	name string
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
