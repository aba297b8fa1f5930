// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-bank-client/models"
)

const (
	// DateLayout is the calendar-day format accepted by the history filter.
	DateLayout = "2006-01-02"

	amountTolerance = 0.01
)

// HistoryFilter narrows a transaction list. Zero fields match everything.
type HistoryFilter struct {
	// Date is a UTC calendar day in [DateLayout] form.
	Date string
	// Amount matches the absolute transaction amount within one cent.
	Amount *float64
}

// ParseHistoryFilter builds a [HistoryFilter] from user input. Blank values
// leave the corresponding criterion unset.
func ParseHistoryFilter(date, amount string) (HistoryFilter, error) {
	var f HistoryFilter

	if date = strings.TrimSpace(date); date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return HistoryFilter{}, ErrInvalidDate
		}
		f.Date = date
	}

	if amount = strings.TrimSpace(amount); amount != "" {
		raw := strings.ReplaceAll(strings.TrimPrefix(amount, "$"), ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return HistoryFilter{}, ErrInvalidAmount
		}
		v = math.Abs(v)
		f.Amount = &v
	}

	return f, nil
}

// Match reports whether tx satisfies every set criterion.
func (f HistoryFilter) Match(tx models.Transaction) bool {
	if f.Date != "" && tx.Date.UTC().Format(DateLayout) != f.Date {
		return false
	}
	if f.Amount != nil && math.Abs(math.Abs(tx.Amount)-*f.Amount) > amountTolerance {
		return false
	}
	return true
}

// FilterTransactions returns the entries of txs matching f, in order.
func FilterTransactions(txs []models.Transaction, f HistoryFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterRecipients drops self from users and keeps those whose username
// contains query, ignoring case. An empty query keeps everyone else.
func FilterRecipients(users []models.Profile, self, query string) []models.Profile {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Profile, 0, len(users))
	for _, u := range users {
		if self != "" && u.Username == self {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Username), query) {
			continue
		}
		out = append(out, u)
	}
	return out
}
