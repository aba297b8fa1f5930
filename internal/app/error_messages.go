// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings of the bank
// client.
//
// Validation errors carry these texts verbatim, and the command-line driver
// prints them as-is, so the wording stays consistent across the client.
package app

// Input validation messages.
const (
	// MsgFillAllFields is shown when a required form field is blank.
	MsgFillAllFields = "Please fill in all fields"

	// MsgInvalidEmail is shown when the login username is not shaped like an
	// email address.
	MsgInvalidEmail = "Please enter a valid email address"

	// MsgPasswordTooShort is shown when a password has fewer than six
	// characters.
	MsgPasswordTooShort = "Password must be at least 6 characters"

	// MsgPasswordsDoNotMatch is shown when the registration password and its
	// confirmation differ.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	MsgEnterAmount         = "Please enter an amount"
	MsgInvalidAmount       = "Please enter a valid amount greater than 0"
	MsgInsufficientBalance = "Insufficient balance"
	MsgSelectRecipient     = "Please select or enter a username"

	// MsgProfileNotLoaded is shown when a spend is attempted before the
	// profile, and with it the balance, has been loaded.
	MsgProfileNotLoaded = "Your profile is not loaded yet, please try again"

	// MsgInvalidDate is shown when a history date filter is not YYYY-MM-DD.
	MsgInvalidDate = "Please enter a date as YYYY-MM-DD"
)

// Fallback messages used when the server gives no explanation.
const (
	MsgLoginFailed            = "Login failed"
	MsgRegistrationFailed     = "Registration failed"
	MsgLogoutFailed           = "Failed to log out"
	MsgDepositFailed          = "Failed to deposit money"
	MsgWithdrawFailed         = "Failed to withdraw money"
	MsgTransferFailed         = "Failed to transfer money"
	MsgLoadProfileFailed      = "Failed to load profile"
	MsgLoadTransactionsFailed = "Failed to load transactions"
	MsgLoadUsersFailed        = "Failed to load users"
	MsgSaveLoginFailed        = "Failed to save login information"
	MsgNotLoggedIn            = "You are not logged in"
)

// Success messages.
const (
	MsgDepositSuccess  = "Deposit successful!"
	MsgWithdrawSuccess = "Withdrawal successful!"
	MsgTransferSuccess = "Transfer successful!"
	MsgLoggedOut       = "Logged out"
)
