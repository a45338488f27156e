// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the state of the single-user session state machine.
type SessionState string

const (
	// StateAnonymous means no account is signed in.
	StateAnonymous SessionState = "ANONYMOUS"
	// StateAuthenticated means an account is signed in; the trial flag of the
	// account parameterizes this state.
	StateAuthenticated SessionState = "AUTHENTICATED"
)

// SessionStatus is a read-only snapshot of the session exposed to clients.
type SessionStatus struct {
	State              SessionState `json:"state"`
	Account            *Account     `json:"account,omitempty"`
	TrialActive        bool         `json:"trialActive"`
	TrialDaysRemaining int          `json:"trialDaysRemaining"`
	CanAccessPremium   bool         `json:"canAccessPremium"`
}
