// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "strings"

const (
	cardNumberMask = "************"
	cvvMask        = "***"
	visibleDigits  = 4
)

// MaskCardNumber keeps the last four digits of number behind a fixed
// twelve-character mask. Separators are ignored. Numbers with fewer than
// four digits are masked entirely.
func MaskCardNumber(number string) string {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			digits = append(digits, number[i])
		}
	}

	if len(digits) < visibleDigits {
		return cardNumberMask + strings.Repeat("*", visibleDigits)
	}

	return cardNumberMask + string(digits[len(digits)-visibleDigits:])
}

// MaskCVV returns the constant security code mask.
func MaskCVV(string) string {
	return cvvMask
}
