// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pay-trial/internal/app"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrSignKeyIsNotSpecified   = errors.New("token sign key is not specified")

	ErrToolNotFound    = errors.New("tool not found")
	ErrPremiumRequired = errors.New("premium tool requires an active trial")
)

// Client-side errors returned by the Client* services.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrSessionExpired        = errors.New("session expired, sign in again")
	ErrSignupRejected        = errors.New("signup rejected, the email may already be registered")
	ErrTrialActivationFailed = errors.New("trial activation failed")
	ErrNotSignedIn           = errors.New("not signed in")
)
