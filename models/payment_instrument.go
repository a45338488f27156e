// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CardDetails is the raw card data entered on the trial signup form.
// It exists only for the duration of a trial activation request; the raw
// number and security code are never persisted.
type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	NameOnCard string `json:"nameOnCard"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// PaymentInstrument is the masked card record stored for an account when a
// trial is activated.
type PaymentInstrument struct {
	// UserID is the ID of the owning [Account].
	UserID string `json:"userId"`

	// CardNumber keeps only the last four digits in clear form.
	CardNumber string `json:"cardNumber"`

	NameOnCard string `json:"nameOnCard"`
	ExpiryDate string `json:"expiryDate"`

	// CVV is always a constant mask.
	CVV string `json:"cvv"`
}
