// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountType is the product kind of an account.
type AccountType string

const (
	AccountChecking AccountType = "Checking"
	AccountSavings  AccountType = "Savings"
	AccountRewards  AccountType = "Rewards"
)

// Account is a server-owned, display-only account record.
type Account struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Balance       float64     `json:"balance"`
	AccountNumber string      `json:"accountNumber,omitempty"`
	Type          AccountType `json:"type,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
}

// Account returns the display account backed by p.
func (p Profile) Account() Account {
	return Account{
		ID:            p.ID,
		Name:          p.DisplayName(),
		Balance:       p.Balance,
		AccountNumber: p.AccountNumber,
		Type:          p.AccountType,
		ImageURL:      p.ImageURL,
	}
}
