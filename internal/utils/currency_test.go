// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{50, "$50.00"},
		{150.5, "$150.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-25, "-$25.00"},
		{-0.001, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "•••• 7890", MaskAccountNumber("1234567890"))
	assert.Equal(t, "•••• 1234", MaskAccountNumber("1234"))
	assert.Equal(t, "•••• ••••", MaskAccountNumber("123"))
	assert.Equal(t, "•••• ••••", MaskAccountNumber(""))
}
