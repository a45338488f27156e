// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pay-trial/internal/adapter"
	"github.com/MKhiriev/go-pay-trial/internal/app"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "bad json", in: adapterErr(adapter.ErrBadRequest, app.MsgInvalidJSON), want: ErrInvalidDataProvided},
		{name: "bad limit stays transport", in: adapterErr(adapter.ErrBadRequest, app.MsgInvalidLimit), want: adapter.ErrBadRequest},
		{name: "wrong password", in: adapterErr(adapter.ErrUnauthorized, app.MsgInvalidLoginPassword), want: ErrInvalidCredentials},
		{name: "session gone", in: adapterErr(adapter.ErrUnauthorized, app.MsgSessionNotActive), want: ErrSessionExpired},
		{name: "signup", in: adapterErr(adapter.ErrConflict, app.MsgSignupRejected), want: ErrSignupRejected},
		{name: "trial", in: adapterErr(adapter.ErrPaymentRequired, app.MsgTrialActivationFailed), want: ErrTrialActivationFailed},
		{name: "locked", in: adapterErr(adapter.ErrForbidden, "x"), want: ErrPremiumRequired},
		{name: "unknown tool", in: adapterErr(adapter.ErrNotFound, "x"), want: ErrToolNotFound},
		{name: "passthrough", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "signup rejected", extractBody(errors.New("conflict: signup rejected")))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
}
