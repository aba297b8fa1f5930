// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AmountRequest is the JSON body of deposit, withdraw and transfer requests.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// BalanceResponse is the validated body returned by every balance-changing
// endpoint. Balance is the server's authoritative post-operation balance.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
