// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/mock"
	"github.com/MKhiriev/go-bank-client/internal/store"
	"github.com/MKhiriev/go-bank-client/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockBankAdapter, store.TokenStore, SessionSynchronizer) {
	t.Helper()
	bank := mock.NewMockBankAdapter(ctrl)
	tokens := store.NewMemoryTokenStore()
	session := NewSessionSynchronizer(bank, tokens, logger.Nop())
	svc := NewAuthService(bank, tokens, session, logger.Nop()).(*authService)
	return svc, bank, tokens, session
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, tokens, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		bank.EXPECT().
			Login(gomock.Any(), models.Credentials{Username: "ana@bank.io", Password: "secret1"}).
			Return(models.AuthResponse{Token: "abc123"}, nil),
		bank.EXPECT().Me(gomock.Any()).Return(ana, nil),
	)

	require.NoError(t, svc.Login(ctx, models.Credentials{Username: " ana@bank.io ", Password: "secret1"}))

	token, ok := tokens.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, ana, *session.State().Profile)
}

func TestAuthService_Login_ValidationRejectsWithoutNetwork(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
		want  error
	}{
		{"empty username", models.Credentials{Password: "secret1"}, ErrEmptyFields},
		{"blank password", models.Credentials{Username: "ana@bank.io", Password: "   "}, ErrEmptyFields},
		{"not an email", models.Credentials{Username: "ana", Password: "secret1"}, ErrInvalidEmail},
		{"short password", models.Credentials{Username: "ana@bank.io", Password: "12345"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, tokens, _ := newTestAuthSvc(t, ctrl)

			err := svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.want)

			_, ok := tokens.Get(context.Background())
			assert.False(t, ok)
		})
	}
}

func TestAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, tokens, _ := newTestAuthSvc(t, ctrl)

	rejected := &adapter.HTTPError{StatusCode: 401, Message: "Invalid credentials"}
	bank.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, rejected)

	err := svc.Login(context.Background(), models.Credentials{Username: "ana@bank.io", Password: "secret1"})
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, "Invalid credentials", UserMessage(err, "Login failed"))

	_, ok := tokens.Get(context.Background())
	assert.False(t, ok)
}

func TestAuthService_Login_ProfileFailureStillLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, tokens, session := newTestAuthSvc(t, ctrl)

	bank.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "abc123"}, nil)
	bank.EXPECT().Me(gomock.Any()).Return(models.Profile{}, errors.New("timeout"))

	require.NoError(t, svc.Login(context.Background(), models.Credentials{Username: "ana@bank.io", Password: "secret1"}))

	_, ok := tokens.Get(context.Background())
	assert.True(t, ok)
	assert.Nil(t, session.State().Profile)
	assert.Error(t, session.LastError())
}

func TestAuthService_Login_TokenNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	bank := mock.NewMockBankAdapter(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	session := mock.NewMockSessionSynchronizer(ctrl)
	svc := NewAuthService(bank, tokens, session, logger.Nop())

	bank.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "abc123"}, nil)
	tokens.EXPECT().Set(gomock.Any(), "abc123").Return(store.ErrTokenNotPersisted)
	session.EXPECT().Refresh(gomock.Any()).Times(0)

	err := svc.Login(context.Background(), models.Credentials{Username: "ana@bank.io", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrTokenNotPersisted)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, tokens, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	reg := models.Registration{Username: "ana", Password: "secret1", PasswordConfirmation: "secret1", Name: "Ana"}
	gomock.InOrder(
		bank.EXPECT().Register(gomock.Any(), reg).Return(models.AuthResponse{Token: "new-token"}, nil),
		bank.EXPECT().Me(gomock.Any()).Return(ana, nil),
	)

	require.NoError(t, svc.Register(ctx, reg))

	token, _ := tokens.Get(ctx)
	assert.Equal(t, "new-token", token)
	assert.True(t, session.State().Authenticated())
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		reg  models.Registration
		want error
	}{
		{"missing confirmation", models.Registration{Username: "ana", Password: "secret1"}, ErrEmptyFields},
		{"missing username", models.Registration{Password: "secret1", PasswordConfirmation: "secret1"}, ErrEmptyFields},
		{"mismatch", models.Registration{Username: "ana", Password: "secret1", PasswordConfirmation: "secret2"}, ErrPasswordsMismatch},
		{"short", models.Registration{Username: "ana", Password: "abc", PasswordConfirmation: "abc"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestAuthSvc(t, ctrl)

			assert.ErrorIs(t, svc.Register(context.Background(), tt.reg), tt.want)
		})
	}
}

func TestAuthService_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, _, _ := newTestAuthSvc(t, ctrl)

	bank.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, &adapter.HTTPError{StatusCode: 409, Message: "Username already exists"})

	err := svc.Register(context.Background(), models.Registration{Username: "ana", Password: "secret1", PasswordConfirmation: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "Username already exists", UserMessage(err, "Registration failed"))
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, bank, tokens, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Set(ctx, "abc123"))
	bank.EXPECT().Me(gomock.Any()).Return(ana, nil)
	require.NoError(t, session.Refresh(ctx))

	require.NoError(t, svc.Logout(ctx))

	_, ok := tokens.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, session.State().Profile)
}

func TestAuthService_Logout_ClearFailureStillResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenStore(ctrl)
	session := mock.NewMockSessionSynchronizer(ctrl)
	svc := NewAuthService(mock.NewMockBankAdapter(ctrl), tokens, session, logger.Nop())

	tokens.EXPECT().Clear(gomock.Any()).Return(store.ErrTokenNotCleared)
	session.EXPECT().Reset()

	assert.ErrorIs(t, svc.Logout(context.Background()), store.ErrTokenNotCleared)
}
