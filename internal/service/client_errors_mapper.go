// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pay-trial/internal/adapter"
	"github.com/MKhiriev/go-pay-trial/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidJSON {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrInvalidCredentials
		default:
			// 401 on any protected route: the token is stale or the server
			// signed somebody else in.
			return ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgSignupRejected {
			return ErrSignupRejected
		}

	case errors.Is(err, adapter.ErrPaymentRequired):
		return ErrTrialActivationFailed

	case errors.Is(err, adapter.ErrForbidden):
		return ErrPremiumRequired

	case errors.Is(err, adapter.ErrNotFound):
		return ErrToolNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "conflict: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
