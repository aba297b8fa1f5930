// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// TransactionType enumerates the kinds of ledger entries the server reports.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "Deposit"
	TransactionWithdraw TransactionType = "Withdraw"
	TransactionTransfer TransactionType = "Transfer"
)

// ParseTransactionType matches raw case-insensitively against the known
// transaction types. The second result is false for unknown values.
func ParseTransactionType(raw string) (TransactionType, bool) {
	for _, t := range []TransactionType{TransactionDeposit, TransactionWithdraw, TransactionTransfer} {
		if strings.EqualFold(strings.TrimSpace(raw), string(t)) {
			return t, true
		}
	}
	return "", false
}

// Transaction is a server-owned ledger entry. The client never builds these
// locally; it only displays the list returned by GET /transactions/my.
type Transaction struct {
	ID          string          `json:"_id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`

	// FromUser and ToUser are set for transfers.
	FromUser string `json:"fromUser,omitempty"`
	ToUser   string `json:"toUser,omitempty"`

	// Username is the counterparty reported by some transfer entries.
	Username string `json:"username,omitempty"`
}

// Counterparty returns the other side of a transfer, or an empty string for
// deposits and withdrawals.
func (t Transaction) Counterparty() string {
	switch {
	case t.Username != "":
		return t.Username
	case t.ToUser != "":
		return t.ToUser
	default:
		return t.FromUser
	}
}
