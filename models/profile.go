// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the server-owned record describing a bank user. The same shape
// is returned for the logged-in user (GET /auth/me) and for every entry of
// the user directory (GET /auth/users).
type Profile struct {
	// ID is the server-side identifier of the user.
	ID string `json:"_id"`

	// Username is the unique login of the user. It is also the path
	// parameter used when transferring money to this user.
	Username string `json:"username"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Email is an optional contact address.
	Email string `json:"email,omitempty"`

	// ImageURL is an absolute URL of the profile picture, or empty when the
	// user has none. Relative paths returned by the server are resolved
	// against the server origin by the adapter.
	ImageURL string `json:"image,omitempty"`

	// Balance is the authoritative account balance as last reported by the
	// server.
	Balance float64 `json:"balance"`

	// AccountNumber and AccountType are optional account details some
	// servers attach to the profile.
	AccountNumber string      `json:"accountNumber,omitempty"`
	AccountType   AccountType `json:"accountType,omitempty"`
}

// DisplayName returns Name when it is set and Username otherwise.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

// Session is a point-in-time view of the client session held by the
// session synchronizer.
type Session struct {
	// Profile is a copy of the loaded profile, or nil when no user is loaded.
	Profile *Profile

	// Loading is true until the first profile refresh resolves and while a
	// refresh is in flight.
	Loading bool

	// Err is the error of the last profile refresh, if it failed. A failed
	// refresh leaves Profile nil but never removes the stored token.
	Err error
}

// Authenticated reports whether a profile is loaded.
func (s Session) Authenticated() bool {
	return s.Profile != nil
}
