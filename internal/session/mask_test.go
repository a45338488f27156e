// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "visa test number", number: "4111111111111111", want: "************1111"},
		{name: "with spaces", number: "4242 4242 4242 4242", want: "************4242"},
		{name: "with dashes", number: "5500-0000-0000-0004", want: "************0004"},
		{name: "amex length", number: "378282246310005", want: "************0005"},
		{name: "exactly four", number: "1234", want: "************1234"},
		{name: "too short", number: "123", want: "****************"},
		{name: "empty", number: "", want: "****************"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCardNumber(tt.number))
		})
	}
}

func TestMaskCardNumber_ExposesAtMostFourDigits(t *testing.T) {
	for _, number := range []string{"4111111111111111", "6011 0009 9013 9424", "30569309025904"} {
		masked := MaskCardNumber(number)

		digits := 0
		for _, r := range masked {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		assert.LessOrEqual(t, digits, 4, masked)
	}
}

func TestMaskCVV(t *testing.T) {
	assert.Equal(t, "***", MaskCVV("123"))
	assert.Equal(t, "***", MaskCVV("1234"))
	assert.Equal(t, "***", MaskCVV(""))
}
