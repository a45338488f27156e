// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued for a signed-in account.
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] so that it can be used directly as the claims
// destination of jwt.ParseWithClaims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the "sub" claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the account id carried in the "sub" claim.
func (t *Token) GetAccountID() (string, error) {
	accountID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting AccountID from token: %w", err)
	}
	if accountID == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
