// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Credentials carries the login form. It is sent as JSON to POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration carries the sign-up form. It is sent as multipart/form-data
// to POST /auth/register.
type Registration struct {
	Username string
	Password string

	// PasswordConfirmation must equal Password. It never leaves the client.
	PasswordConfirmation string

	// Name is the display name. The username is sent when it is empty.
	Name string

	// Image is an optional profile picture.
	Image *Upload
}

// Upload is a file attached to a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// AuthResponse is the validated body of a successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
}
