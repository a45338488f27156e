// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// TrialPeriod is the length of the trial window opened by a trial activation.
const TrialPeriod = 30 * 24 * time.Hour

// Account represents a registered user of the demo dashboard.
// Email is the natural key: it is unique across all accounts and compared
// with an exact, case-sensitive match.
type Account struct {
	// ID is generated on signup and never changes.
	ID string `json:"id"`

	// Name is the display name shown on the dashboard.
	Name string `json:"name"`

	// Email is used for lookup during login and for duplicate detection.
	Email string `json:"email"`

	// Password is stored in clear text. The system is a demo and keeps the
	// value exactly as entered; it must never be returned by the API.
	Password string `json:"password,omitempty"`

	// CreatedAt is the signup timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// TrialActive is set once a trial is activated and never cleared.
	TrialActive bool `json:"trialActive,omitempty"`

	// TrialStartDate and TrialEndDate bound the trial window.
	TrialStartDate *time.Time `json:"trialStartDate,omitempty"`
	TrialEndDate   *time.Time `json:"trialEndDate,omitempty"`
}

// Redacted returns a copy of the account without the password, suitable for
// responses and logs.
func (a Account) Redacted() Account {
	a.Password = ""
	return a
}

// WithTrial returns a copy of the account with an active trial window
// starting at start and lasting [TrialPeriod].
func (a Account) WithTrial(start time.Time) Account {
	end := start.Add(TrialPeriod)
	a.TrialActive = true
	a.TrialStartDate = &start
	a.TrialEndDate = &end
	return a
}

// TrialDaysRemaining returns the number of whole days, rounded up, left in
// the trial window at now. It is zero when no trial is active or the window
// has already elapsed.
func (a Account) TrialDaysRemaining(now time.Time) int {
	if !a.TrialActive || a.TrialEndDate == nil {
		return 0
	}

	left := a.TrialEndDate.Sub(now)
	if left <= 0 {
		return 0
	}

	return int(math.Ceil(left.Hours() / 24))
}

// TrialExpired reports whether the account had a trial whose window is over.
func (a Account) TrialExpired(now time.Time) bool {
	return a.TrialActive && a.TrialEndDate != nil && !now.Before(*a.TrialEndDate)
}
