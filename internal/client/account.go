// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-bank-client/internal/app"
	"github.com/MKhiriev/go-bank-client/internal/service"
	"github.com/MKhiriev/go-bank-client/internal/utils"
	"github.com/MKhiriev/go-bank-client/models"
)

func (a *App) cmdMe(_ context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	state := a.services.Session.State()
	if state.Profile == nil {
		return ErrNotLoggedIn
	}
	return renderProfile(a.out, *state.Profile)
}

func (a *App) cmdBalance(_ context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	_, err := fmt.Fprintf(a.out, "Balance: %s\n", utils.FormatCurrency(a.services.Session.Balance()))
	return err
}

// cmdUsers lists transfer recipients: everyone but the logged-in user,
// optionally narrowed by a username search.
func (a *App) cmdUsers(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	users, err := a.services.Transactions.Users(ctx)
	if err != nil {
		return err
	}

	var self string
	if p := a.services.Session.State().Profile; p != nil {
		self = p.Username
	}
	return renderUsers(a.out, service.FilterRecipients(users, self, argAt(args, 0)))
}

func (a *App) cmdHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	date := fs.String("date", "", "day in YYYY-MM-DD (UTC)")
	amount := fs.String("amount", "", "amount, matched within one cent")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	filter, err := service.ParseHistoryFilter(*date, *amount)
	if err != nil {
		return err
	}

	history, err := a.services.Transactions.History(ctx)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return renderTransactions(a.out, history)
	}

	matched := service.FilterTransactions(history, filter)
	if len(matched) == 0 {
		_, err = fmt.Fprintln(a.out, "No matching transactions.")
		return err
	}
	return renderTransactions(a.out, matched)
}

func (a *App) cmdDeposit(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	amount, err := service.ParseAmount(argAt(args, 0))
	if err != nil {
		return err
	}
	resp, err := a.services.Transactions.Deposit(ctx, amount)
	if err != nil {
		return err
	}
	return a.printSettled(app.MsgDepositSuccess, resp)
}

func (a *App) cmdWithdraw(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	amount, err := service.ParseAmount(argAt(args, 0))
	if err != nil {
		return err
	}
	resp, err := a.services.Transactions.Withdraw(ctx, amount)
	if err != nil {
		return err
	}
	return a.printSettled(app.MsgWithdrawSuccess, resp)
}

func (a *App) cmdTransfer(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return ErrUsage
	}
	amount, err := service.ParseAmount(argAt(args, 1))
	if err != nil {
		return err
	}
	resp, err := a.services.Transactions.Transfer(ctx, argAt(args, 0), amount)
	if err != nil {
		return err
	}
	return a.printSettled(app.MsgTransferSuccess, resp)
}

func (a *App) printSettled(msg string, resp models.BalanceResponse) error {
	_, err := fmt.Fprintf(a.out, "%s New balance: %s\n", msg, utils.FormatCurrency(resp.Balance))
	return err
}

// argAt returns args[i], or "" so that a missing value is reported by
// validation rather than as a usage error.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
