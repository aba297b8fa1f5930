// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/models"
)

type transactionService struct {
	bank    adapter.BankAdapter
	session SessionSynchronizer

	logger *logger.Logger
}

// NewTransactionService constructs a [TransactionService]. Successful
// mutations patch the balance held by session and then refresh it.
func NewTransactionService(bank adapter.BankAdapter, session SessionSynchronizer, log *logger.Logger) TransactionService {
	return &transactionService{
		bank:    bank,
		session: session,
		logger:  log,
	}
}

func (t *transactionService) Deposit(ctx context.Context, amount float64) (models.BalanceResponse, error) {
	if err := validateAmount(amount); err != nil {
		return models.BalanceResponse{}, err
	}

	resp, err := t.bank.Deposit(ctx, amount)
	if err != nil {
		t.logger.Err(err).Str("func", "*transactionService.Deposit").Float64("amount", amount).Msg("deposit failed")
		return models.BalanceResponse{}, fmt.Errorf("deposit: %w", err)
	}

	t.settle(ctx, resp)
	return resp, nil
}

func (t *transactionService) Withdraw(ctx context.Context, amount float64) (models.BalanceResponse, error) {
	if err := t.checkSpend(amount); err != nil {
		return models.BalanceResponse{}, err
	}

	resp, err := t.bank.Withdraw(ctx, amount)
	if err != nil {
		t.logger.Err(err).Str("func", "*transactionService.Withdraw").Float64("amount", amount).Msg("withdrawal failed")
		return models.BalanceResponse{}, fmt.Errorf("withdraw: %w", err)
	}

	t.settle(ctx, resp)
	return resp, nil
}

func (t *transactionService) Transfer(ctx context.Context, username string, amount float64) (models.BalanceResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.BalanceResponse{}, ErrEmptyRecipient
	}
	if err := t.checkSpend(amount); err != nil {
		return models.BalanceResponse{}, err
	}

	resp, err := t.bank.Transfer(ctx, username, amount)
	if err != nil {
		t.logger.Err(err).
			Str("func", "*transactionService.Transfer").
			Str("to", username).
			Float64("amount", amount).
			Msg("transfer failed")
		return models.BalanceResponse{}, fmt.Errorf("transfer: %w", err)
	}

	t.settle(ctx, resp)
	return resp, nil
}

// checkSpend rejects amounts the loaded balance cannot cover. Without a
// loaded profile the balance is unknown, which is reported as such rather
// than as an insufficient balance.
func (t *transactionService) checkSpend(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	state := t.session.State()
	if state.Profile == nil {
		return ErrProfileNotLoaded
	}
	return validateSpend(amount, state.Profile.Balance)
}

// settle shows the confirmed balance at once, then reloads the profile.
func (t *transactionService) settle(ctx context.Context, resp models.BalanceResponse) {
	t.session.ApplyBalance(resp.Balance)
	_ = t.session.Refresh(ctx)
}

func (t *transactionService) History(ctx context.Context) ([]models.Transaction, error) {
	txs, err := t.bank.MyTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return txs, nil
}

func (t *transactionService) Users(ctx context.Context) ([]models.Profile, error) {
	users, err := t.bank.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return users, nil
}
