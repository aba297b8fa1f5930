// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/app"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/mock"
	"github.com/MKhiriev/go-bank-client/internal/service"
	"github.com/MKhiriev/go-bank-client/internal/store"
	"github.com/MKhiriev/go-bank-client/models"
)

type testApp struct {
	app     *App
	out     *bytes.Buffer
	session *mock.MockSessionSynchronizer
	auth    *mock.MockAuthService
	txs     *mock.MockTransactionService
	job     *mock.MockProfileRefreshJob
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	return newTestAppWithReader(t, strings.NewReader(input))
}

func newTestAppWithReader(t *testing.T, in io.Reader) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		out:     &bytes.Buffer{},
		session: mock.NewMockSessionSynchronizer(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		txs:     mock.NewMockTransactionService(ctrl),
		job:     mock.NewMockProfileRefreshJob(ctrl),
	}
	services := &service.ClientServices{
		Session:      ta.session,
		Auth:         ta.auth,
		Transactions: ta.txs,
		RefreshJob:   ta.job,
	}
	ta.app = NewApp(services, models.NewAppBuildInfo("1.2.0", "2026-10-19", "abc123"), in, ta.out, logger.Nop())
	return ta
}

var loggedIn = models.Session{Profile: &models.Profile{
	ID:       "u1",
	Username: "ana@x.io",
	Name:     "Ana",
	Email:    "ana@x.io",
	Balance:  1234.56,
}}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestRun_UnknownCommand(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.app.Run(context.Background(), []string{"fly"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, ta.out.String(), `Unknown command "fly"`)
}

func TestRun_Version(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, ta.out.String(), "Build version: 1.2.0")
	assert.Contains(t, ta.out.String(), "Build commit: abc123")
}

func TestRun_Help(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.app.Run(context.Background(), []string{"help"}))

	out := ta.out.String()
	assert.Contains(t, out, "transfer <username> <amount>")
	assert.Contains(t, out, "deposit <amount>")
	assert.NotContains(t, out, "  profile")
}

// ── session gate ─────────────────────────────────────────────────────────────

func TestRun_NotLoggedIn(t *testing.T) {
	ta := newTestApp(t, "")
	gomock.InOrder(
		ta.session.EXPECT().State().Return(models.Session{Loading: true}),
		ta.session.EXPECT().Start(gomock.Any()),
		ta.session.EXPECT().State().Return(models.Session{}),
	)

	err := ta.app.Run(context.Background(), []string{"balance"})

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Contains(t, ta.out.String(), app.MsgNotLoggedIn)
}

func TestRun_ProfileFetchFailed(t *testing.T) {
	ta := newTestApp(t, "")
	fetchErr := &adapter.HTTPError{StatusCode: 500, Message: "database is down"}
	ta.session.EXPECT().State().Return(models.Session{Err: fetchErr})

	err := ta.app.Run(context.Background(), []string{"me"})

	require.ErrorIs(t, err, ErrProfileNotLoaded)
	assert.Contains(t, ta.out.String(), "database is down")
}

func TestRun_ProfileFetchFailedWithoutMessage(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(models.Session{Err: errors.New("dial tcp: refused")})

	err := ta.app.Run(context.Background(), []string{"history"})

	require.ErrorIs(t, err, ErrProfileNotLoaded)
	assert.Contains(t, ta.out.String(), app.MsgLoadProfileFailed)
}

// ── login / register / logout ────────────────────────────────────────────────

func TestLogin_Prompts(t *testing.T) {
	ta := newTestApp(t, "ana@x.io\nsecret1\n")
	ta.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "ana@x.io", Password: "secret1"}).Return(nil)
	ta.session.EXPECT().State().Return(loggedIn)

	require.NoError(t, ta.app.Run(context.Background(), []string{"login"}))

	out := ta.out.String()
	assert.Contains(t, out, "Username (email): ")
	assert.Contains(t, out, "Password: ")
	assert.Contains(t, out, "Logged in as Ana.")
}

func TestLogin_ProfileNotLoaded(t *testing.T) {
	ta := newTestApp(t, "secret1\n")
	ta.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "ana@x.io", Password: "secret1"}).Return(nil)
	ta.session.EXPECT().State().Return(models.Session{Err: errors.New("timeout")})

	require.NoError(t, ta.app.Run(context.Background(), []string{"login", "ana@x.io"}))

	assert.Contains(t, ta.out.String(), "Logged in.")
	assert.Contains(t, ta.out.String(), app.MsgLoadProfileFailed)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"validation", service.ErrInvalidEmail, app.MsgInvalidEmail},
		{"server message", fmt.Errorf("login: %w", &adapter.HTTPError{StatusCode: 401, Message: "Invalid credentials"}), "Invalid credentials"},
		{"transport", fmt.Errorf("login: %w", errors.New("connection reset")), app.MsgLoginFailed},
		{"token not saved", fmt.Errorf("%w: disk full", store.ErrTokenNotPersisted), app.MsgSaveLoginFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "secret1\n")
			ta.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.err)

			err := ta.app.Run(context.Background(), []string{"login", "ana@x.io"})

			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, ta.out.String(), tt.wantMsg)
		})
	}
}

func TestLogin_TooManyArgs(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.app.Run(context.Background(), []string{"login", "a", "b"})

	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, ta.out.String(), "Usage: bank-client login [username]")
}

func TestLogin_PasswordFromTerminal(t *testing.T) {
	oldIsTerminal, oldReadPassword := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldIsTerminal, oldReadPassword })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("hunter22"), nil }

	ta := newTestAppWithReader(t, os.Stdin)
	ta.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "ana@x.io", Password: "hunter22"}).Return(nil)
	ta.session.EXPECT().State().Return(loggedIn)

	require.NoError(t, ta.app.Run(context.Background(), []string{"login", "ana@x.io"}))
	assert.NotContains(t, ta.out.String(), "hunter22")
}

func TestLogin_TerminalReadFails(t *testing.T) {
	oldIsTerminal, oldReadPassword := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldIsTerminal, oldReadPassword })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("inappropriate ioctl") }

	ta := newTestAppWithReader(t, os.Stdin)

	err := ta.app.Run(context.Background(), []string{"login", "ana@x.io"})

	require.Error(t, err)
	assert.Contains(t, ta.out.String(), app.MsgLoginFailed)
}

func TestRegister_WithImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	ta := newTestApp(t, "secret1\nsecret1\n")
	ta.auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, reg models.Registration) error {
		assert.Equal(t, "ana@x.io", reg.Username)
		assert.Equal(t, "Ana", reg.Name)
		assert.Equal(t, "secret1", reg.Password)
		assert.Equal(t, "secret1", reg.PasswordConfirmation)
		require.NotNil(t, reg.Image)
		assert.Equal(t, "me.png", reg.Image.FileName)
		assert.Equal(t, "image/png", reg.Image.ContentType)
		body, err := io.ReadAll(reg.Image.Reader)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(body))
		return nil
	})
	ta.session.EXPECT().State().Return(loggedIn)

	err := ta.app.Run(context.Background(), []string{"register", "-name", "Ana", "-image", path, "ana@x.io"})

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Logged in as Ana.")
}

func TestRegister_PromptsForUsername(t *testing.T) {
	ta := newTestApp(t, "ana\nsecret1\nsecret2\n")
	ta.auth.EXPECT().Register(gomock.Any(), models.Registration{
		Username:             "ana",
		Password:             "secret1",
		PasswordConfirmation: "secret2",
	}).Return(service.ErrPasswordsMismatch)

	err := ta.app.Run(context.Background(), []string{"register"})

	require.ErrorIs(t, err, service.ErrPasswordsMismatch)
	assert.Contains(t, ta.out.String(), app.MsgPasswordsDoNotMatch)
}

func TestRegister_MissingImage(t *testing.T) {
	ta := newTestApp(t, "secret1\nsecret1\n")

	err := ta.app.Run(context.Background(), []string{"register", "-image", filepath.Join(t.TempDir(), "nope.jpg"), "ana"})

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, ta.out.String(), app.MsgRegistrationFailed)
}

func TestRegister_BadFlag(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.app.Run(context.Background(), []string{"register", "-avatar", "x"})

	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, ta.out.String(), "Usage: bank-client register")
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t, "")
	ta.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"logout"}))
	assert.Contains(t, ta.out.String(), app.MsgLoggedOut)
}

func TestLogout_Fails(t *testing.T) {
	ta := newTestApp(t, "")
	ta.auth.EXPECT().Logout(gomock.Any()).Return(store.ErrTokenNotCleared)

	err := ta.app.Run(context.Background(), []string{"logout"})

	require.ErrorIs(t, err, store.ErrTokenNotCleared)
	assert.Contains(t, ta.out.String(), app.MsgLogoutFailed)
}

// ── profile and lists ────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn).Times(2)

	require.NoError(t, ta.app.Run(context.Background(), []string{"profile"}))

	out := ta.out.String()
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "ana@x.io")
	assert.Contains(t, out, "$1,234.56")
}

func TestMe_AccountDetails(t *testing.T) {
	ta := newTestApp(t, "")
	profile := *loggedIn.Profile
	profile.AccountNumber = "4000123456789010"
	profile.AccountType = models.AccountChecking
	ta.session.EXPECT().State().Return(models.Session{Profile: &profile}).Times(2)

	require.NoError(t, ta.app.Run(context.Background(), []string{"me"}))

	out := ta.out.String()
	assert.Contains(t, out, "•••• 9010")
	assert.NotContains(t, out, "4000123456789010")
	assert.Contains(t, out, "Checking")
}

func TestBalance(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.session.EXPECT().Balance().Return(150.0)

	require.NoError(t, ta.app.Run(context.Background(), []string{"balance"}))
	assert.Contains(t, ta.out.String(), "Balance: $150.00")
}

func TestUsers_ExcludesSelf(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn).Times(2)
	ta.txs.EXPECT().Users(gomock.Any()).Return([]models.Profile{
		{ID: "u1", Username: "ana@x.io", Balance: 1234.56},
		{ID: "u2", Username: "bob", Balance: 10},
		{ID: "u3", Username: "carl", Name: "Carl C", Balance: 2500},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"users"}))

	out := ta.out.String()
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "Carl C")
	assert.Contains(t, out, "$2,500.00")
	assert.NotContains(t, out, "ana@x.io")
}

func TestUsers_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    []string
		notWant []string
	}{
		{name: "case-insensitive", query: "BOB", want: []string{"bob", "Bobby"}, notWant: []string{"carl"}},
		{name: "single match", query: "arl", want: []string{"carl"}, notWant: []string{"bob"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.session.EXPECT().State().Return(loggedIn).Times(2)
			ta.txs.EXPECT().Users(gomock.Any()).Return([]models.Profile{
				{ID: "u2", Username: "bob"},
				{ID: "u3", Username: "carl"},
				{ID: "u4", Username: "Bobby"},
			}, nil)

			require.NoError(t, ta.app.Run(context.Background(), []string{"users", tt.query}))

			out := ta.out.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestUsers_Empty(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn).Times(2)
	ta.txs.EXPECT().Users(gomock.Any()).Return([]models.Profile{{ID: "u1", Username: "ana@x.io"}}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"users"}))
	assert.Contains(t, ta.out.String(), "No users found.")
}

func TestHistory(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().History(gomock.Any()).Return([]models.Transaction{
		{ID: "t2", Type: models.TransactionTransfer, Amount: 25, Date: time.Now(), ToUser: "bob"},
		{ID: "t1", Type: models.TransactionDeposit, Amount: 100, Date: time.Now().Add(-time.Hour)},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"history"}))

	out := ta.out.String()
	assert.Contains(t, out, "COUNTERPARTY")
	assert.Contains(t, out, "Transfer")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "$100.00")
	assert.Less(t, strings.Index(out, "Transfer"), strings.Index(out, "Deposit"))
}

func TestHistory_Filters(t *testing.T) {
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	history := []models.Transaction{
		{ID: "t3", Type: models.TransactionTransfer, Amount: 25, Date: day.Add(24 * time.Hour), ToUser: "bob"},
		{ID: "t2", Type: models.TransactionWithdraw, Amount: 40, Date: day},
		{ID: "t1", Type: models.TransactionDeposit, Amount: 25, Date: day.Add(-time.Hour)},
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{name: "by date", args: []string{"-date", "2026-03-14"}, want: []string{"Withdraw", "Deposit"}, notWant: []string{"Transfer"}},
		{name: "by amount", args: []string{"-amount", "25"}, want: []string{"Transfer", "Deposit"}, notWant: []string{"Withdraw"}},
		{name: "by both", args: []string{"-date", "2026-03-15", "-amount", "$25.00"}, want: []string{"Transfer"}, notWant: []string{"Withdraw", "Deposit"}},
		{name: "none match", args: []string{"-amount", "999"}, want: []string{"No matching transactions."}, notWant: []string{"COUNTERPARTY"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.session.EXPECT().State().Return(loggedIn)
			ta.txs.EXPECT().History(gomock.Any()).Return(history, nil)

			require.NoError(t, ta.app.Run(context.Background(), append([]string{"history"}, tt.args...)))

			out := ta.out.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestHistory_BadFilter(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "bad date", args: []string{"-date", "14.03.2026"}, wantErr: service.ErrInvalidDate, wantMsg: app.MsgInvalidDate},
		{name: "bad amount", args: []string{"-amount", "lots"}, wantErr: service.ErrInvalidAmount, wantMsg: app.MsgInvalidAmount},
		{name: "stray argument", args: []string{"yesterday"}, wantErr: ErrUsage, wantMsg: "Usage: bank-client history"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.session.EXPECT().State().Return(loggedIn)

			err := ta.app.Run(context.Background(), append([]string{"history"}, tt.args...))

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, ta.out.String(), tt.wantMsg)
		})
	}
}

func TestHistory_Fails(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().History(gomock.Any()).Return(nil, errors.New("eof"))

	require.Error(t, ta.app.Run(context.Background(), []string{"history"}))
	assert.Contains(t, ta.out.String(), app.MsgLoadTransactionsFailed)
}

// ── money movement ───────────────────────────────────────────────────────────

func TestDeposit(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().Deposit(gomock.Any(), 50.0).Return(models.BalanceResponse{Balance: 150}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"deposit", "50"}))
	assert.Contains(t, ta.out.String(), app.MsgDepositSuccess+" New balance: $150.00")
}

func TestDeposit_MissingAmount(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)

	err := ta.app.Run(context.Background(), []string{"deposit"})

	require.ErrorIs(t, err, service.ErrEmptyAmount)
	assert.Contains(t, ta.out.String(), app.MsgEnterAmount)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)

	err := ta.app.Run(context.Background(), []string{"deposit", "-5"})

	require.ErrorIs(t, err, service.ErrInvalidAmount)
	assert.Contains(t, ta.out.String(), app.MsgInvalidAmount)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().Withdraw(gomock.Any(), 5000.0).Return(models.BalanceResponse{}, service.ErrInsufficientBalance)

	err := ta.app.Run(context.Background(), []string{"withdraw", "5000"})

	require.ErrorIs(t, err, service.ErrInsufficientBalance)
	assert.Contains(t, ta.out.String(), app.MsgInsufficientBalance)
}

func TestWithdraw(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().Withdraw(gomock.Any(), 12.5).Return(models.BalanceResponse{Balance: 87.5}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"withdraw", "12.5"}))
	assert.Contains(t, ta.out.String(), app.MsgWithdrawSuccess+" New balance: $87.50")
}

func TestTransfer(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)
	ta.txs.EXPECT().Transfer(gomock.Any(), "bob", 1000.0).Return(models.BalanceResponse{Balance: 234.56}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"transfer", "bob", "$1,000"}))
	assert.Contains(t, ta.out.String(), app.MsgTransferSuccess+" New balance: $234.56")
}

func TestTransfer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"recipient missing", &adapter.HTTPError{StatusCode: 404, Message: "User not found"}, "User not found"},
		{"transport", errors.New("connection refused"), app.MsgTransferFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			ta.session.EXPECT().State().Return(loggedIn)
			ta.txs.EXPECT().Transfer(gomock.Any(), "ghost", 5.0).Return(models.BalanceResponse{}, tt.err)

			err := ta.app.Run(context.Background(), []string{"transfer", "ghost", "5"})

			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, ta.out.String(), tt.wantMsg)
		})
	}
}

func TestTransfer_TooManyArgs(t *testing.T) {
	ta := newTestApp(t, "")
	ta.session.EXPECT().State().Return(loggedIn)

	err := ta.app.Run(context.Background(), []string{"transfer", "bob", "5", "now"})

	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, ta.out.String(), "Usage: bank-client transfer <username> <amount>")
}
