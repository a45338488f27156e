// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and the
// client services.
//
// The handlers write these strings into error response bodies and the client
// maps them back to its own error values, so both sides must use the same
// wording.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgSignupRejected is returned when a signup is refused, either because
	// the email is taken or because the account could not be persisted.
	MsgSignupRejected = "signup rejected"

	// MsgInvalidLoginPassword is returned when no account matches the
	// supplied email and password.
	MsgInvalidLoginPassword = "invalid email or password"

	// MsgTrialActivationFailed is returned when a trial could not be
	// activated.
	MsgTrialActivationFailed = "trial activation failed"

	// MsgInvalidLimit is returned for a malformed notifications limit.
	MsgInvalidLimit = "invalid limit"

	// MsgSessionNotActive is returned when a valid token belongs to an account
	// that is not the active session.
	MsgSessionNotActive = "session is not active"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
