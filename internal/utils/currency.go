// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as US dollars with two decimals and
// thousands grouping, e.g. "$1,234.56" or "-$5.00".
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount*100) / 100
	if rounded < 0 {
		return "-$" + usdPrinter.Sprintf("%.2f", -rounded)
	}
	return "$" + usdPrinter.Sprintf("%.2f", math.Abs(rounded))
}

// MaskAccountNumber hides all but the last four characters of an account
// number.
func MaskAccountNumber(accountNumber string) string {
	r := []rune(accountNumber)
	if len(r) < 4 {
		return "•••• ••••"
	}
	return "•••• " + string(r[len(r)-4:])
}
