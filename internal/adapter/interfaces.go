// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the bank client and
// the remote banking REST API.
//
// The primary abstraction is [BankAdapter]: one method per endpoint, one HTTP
// request per call, no caching and no retries. The HTTP implementation
// ([NewHTTPBankAdapter]) reads the session token from a [TokenSource] before
// every request and validates every response against a single schema at the
// boundary, so the layers above only ever see well-formed models.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for status checks and
// [errors.As] with [*HTTPError] to reach the server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bank-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bank_adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to outgoing requests.
// store.TokenStore satisfies it.
type TokenSource interface {
	Get(ctx context.Context) (string, bool)
}

// BankAdapter is the typed facade over the banking REST API.
type BankAdapter interface {
	// Login exchanges credentials for a session token.
	// POST /auth/login
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates an account and returns its session token. The request
	// is sent as multipart form data; the image part is included only when
	// reg.Image is set.
	// POST /auth/register
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	// Me returns the profile of the token owner.
	// GET /auth/me
	Me(ctx context.Context) (models.Profile, error)

	// Users lists all users known to the server.
	// GET /auth/users
	Users(ctx context.Context) ([]models.Profile, error)

	// MyTransactions lists the transactions of the token owner in server
	// order.
	// GET /transactions/my
	MyTransactions(ctx context.Context) ([]models.Transaction, error)

	// Deposit adds amount to the balance and returns the new balance.
	// PUT /transactions/deposit
	Deposit(ctx context.Context, amount float64) (models.BalanceResponse, error)

	// Withdraw removes amount from the balance and returns the new balance.
	// PUT /transactions/withdraw
	Withdraw(ctx context.Context, amount float64) (models.BalanceResponse, error)

	// Transfer moves amount to username and returns the sender's new balance.
	// PUT /transactions/transfer/{username}
	Transfer(ctx context.Context, username string, amount float64) (models.BalanceResponse, error)
}
