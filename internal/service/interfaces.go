// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic: the session
// synchronizer that owns the cached profile, input validation and the
// authentication and money-movement flows built on top of
// adapter.BankAdapter.
package service

import (
	"context"

	"github.com/MKhiriev/go-bank-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionSynchronizer owns the profile of the logged-in user as last
// reported by the server.
//
// The profile is only ever replaced wholesale by a successful refresh, or
// has its balance patched by ApplyBalance after a confirmed mutation.
type SessionSynchronizer interface {
	// Start runs the initial refresh. State reports Loading until it
	// resolves.
	Start(ctx context.Context)

	// Refresh reloads the profile. Without a stored token the profile is
	// cleared and no request is made. A failed fetch clears the profile,
	// keeps the token and is recorded in LastError; the error is also
	// returned for callers that want to report it. Concurrent calls share
	// one request.
	Refresh(ctx context.Context) error

	// ApplyBalance replaces only the balance of the loaded profile. It is a
	// no-op when no profile is loaded.
	ApplyBalance(balance float64)

	// Reset forgets the profile and discards any refresh still in flight.
	Reset()

	// State returns a snapshot that is safe to keep and modify.
	State() models.Session

	// Balance returns the loaded balance, or 0 without a profile.
	Balance() float64

	// LastError returns the error of the most recent refresh, or nil.
	LastError() error
}

// AuthService validates credentials and drives login, registration and
// logout.
type AuthService interface {
	// Login validates creds, obtains a token, stores it and refreshes the
	// session.
	Login(ctx context.Context, creds models.Credentials) error

	// Register validates reg, creates the account, stores the returned
	// token and refreshes the session.
	Register(ctx context.Context, reg models.Registration) error

	// Logout removes the stored token and resets the session. The session
	// is reset even when the token could not be removed.
	Logout(ctx context.Context) error
}

// TransactionService validates and performs money movements and reads the
// ledger.
type TransactionService interface {
	Deposit(ctx context.Context, amount float64) (models.BalanceResponse, error)

	// Withdraw rejects amounts above the loaded balance without contacting
	// the server.
	Withdraw(ctx context.Context, amount float64) (models.BalanceResponse, error)

	// Transfer rejects amounts above the loaded balance without contacting
	// the server.
	Transfer(ctx context.Context, username string, amount float64) (models.BalanceResponse, error)

	// History returns the user's transactions, newest first.
	History(ctx context.Context) ([]models.Transaction, error)

	// Users lists every user known to the server.
	Users(ctx context.Context) ([]models.Profile, error)
}

// ProfileRefreshJob periodically refreshes the session in the background.
type ProfileRefreshJob interface {
	Start(ctx context.Context)
	Stop()
}
