// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/store"
	"github.com/MKhiriev/go-bank-client/models"
)

type authService struct {
	bank    adapter.BankAdapter
	tokens  store.TokenStore
	session SessionSynchronizer

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(bank adapter.BankAdapter, tokens store.TokenStore, session SessionSynchronizer, log *logger.Logger) AuthService {
	return &authService{
		bank:    bank,
		tokens:  tokens,
		session: session,
		logger:  log,
	}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) error {
	if err := ValidateCredentials(creds); err != nil {
		return err
	}
	creds.Username = strings.TrimSpace(creds.Username)

	resp, err := a.bank.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Login").Str("username", creds.Username).Msg("login rejected")
		return fmt.Errorf("login: %w", err)
	}

	return a.startSession(ctx, "*authService.Login", resp.Token)
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if err := ValidateRegistration(reg); err != nil {
		return err
	}
	reg.Username = strings.TrimSpace(reg.Username)

	resp, err := a.bank.Register(ctx, reg)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Register").Str("username", reg.Username).Msg("registration rejected")
		return fmt.Errorf("register: %w", err)
	}

	return a.startSession(ctx, "*authService.Register", resp.Token)
}

// startSession persists token and loads the profile that belongs to it. A
// failed profile load does not fail the login; the session reports it.
func (a *authService) startSession(ctx context.Context, fn, token string) error {
	if err := a.tokens.Set(ctx, token); err != nil {
		a.logger.Err(err).Str("func", fn).Msg("failed to persist session token")
		return err
	}

	a.session.Reset()
	_ = a.session.Refresh(ctx)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	err := a.tokens.Clear(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Logout").Msg("failed to clear session token")
	}

	a.session.Reset()
	return err
}
