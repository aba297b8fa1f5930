// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bank-client/models"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// ValidateCredentials checks a login form. The username must look like an
// email address.
func ValidateCredentials(creds models.Credentials) error {
	if blank(creds.Username, creds.Password) {
		return ErrEmptyFields
	}
	if !emailPattern.MatchString(strings.TrimSpace(creds.Username)) {
		return ErrInvalidEmail
	}
	if len([]rune(creds.Password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRegistration checks a sign-up form. Name and image are optional.
func ValidateRegistration(reg models.Registration) error {
	if blank(reg.Username, reg.Password, reg.PasswordConfirmation) {
		return ErrEmptyFields
	}
	if reg.Password != reg.PasswordConfirmation {
		return ErrPasswordsMismatch
	}
	if len([]rune(reg.Password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ParseAmount reads a user-typed amount such as "150", "12.5" or
// "$1,000.00".
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyAmount
	}

	raw = strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if err = validateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// validateSpend rejects amounts the loaded balance cannot cover.
func validateSpend(amount, balance float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount > balance {
		return ErrInsufficientBalance
	}
	return nil
}
