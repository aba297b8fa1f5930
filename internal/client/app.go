// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-bank-client/internal/app"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/service"
	"github.com/MKhiriev/go-bank-client/internal/store"
	"github.com/MKhiriev/go-bank-client/internal/workers"
	"github.com/MKhiriev/go-bank-client/models"
)

const programName = "bank-client"

type command struct {
	usage   string
	summary string
	// needsSession commands run only with a loaded profile
	needsSession bool
	// fallback is shown when an error carries no user-facing text
	fallback string
	run      func(ctx context.Context, args []string) error
}

// App is the command-line client. It owns no state of its own besides I/O;
// the session lives in the services it was built with.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	build    models.AppBuildInfo

	stdin io.Reader
	in    *bufio.Reader
	out   io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// NewApp constructs an [App] reading from in and printing to out. When in is
// a terminal, passwords are read without echo.
func NewApp(services *service.ClientServices, build models.AppBuildInfo, in io.Reader, out io.Writer, log *logger.Logger) *App {
	a := &App{
		services: services,
		workers:  workers.NewWorkers(services.RefreshJob),
		build:    build,
		stdin:    in,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   log,
	}
	a.commands = a.registerCommands()
	return a
}

func (a *App) registerCommands() map[string]command {
	profile := command{
		usage:        "me",
		summary:      "show the logged-in profile",
		needsSession: true,
		fallback:     app.MsgLoadProfileFailed,
		run:          a.cmdMe,
	}

	return map[string]command{
		"help":    {usage: "help", summary: "list commands", run: a.cmdHelp},
		"version": {usage: "version", summary: "print build information", run: a.cmdVersion},
		"login": {
			usage:    "login [username]",
			summary:  "log in and remember the session",
			fallback: app.MsgLoginFailed,
			run:      a.cmdLogin,
		},
		"register": {
			usage:    "register [-name NAME] [-image PATH] [username]",
			summary:  "create an account and log in",
			fallback: app.MsgRegistrationFailed,
			run:      a.cmdRegister,
		},
		"logout": {usage: "logout", summary: "forget the stored session", fallback: app.MsgLogoutFailed, run: a.cmdLogout},
		"me":      profile,
		"profile": profile,
		"balance": {
			usage:        "balance",
			summary:      "show the current balance",
			needsSession: true,
			fallback:     app.MsgLoadProfileFailed,
			run:          a.cmdBalance,
		},
		"users": {
			usage:        "users [search]",
			summary:      "list users you can transfer to",
			needsSession: true,
			fallback:     app.MsgLoadUsersFailed,
			run:          a.cmdUsers,
		},
		"history": {
			usage:        "history [-date YYYY-MM-DD] [-amount N]",
			summary:      "list your transactions, newest first",
			needsSession: true,
			fallback:     app.MsgLoadTransactionsFailed,
			run:          a.cmdHistory,
		},
		"deposit": {
			usage:        "deposit <amount>",
			summary:      "add money to your balance",
			needsSession: true,
			fallback:     app.MsgDepositFailed,
			run:          a.cmdDeposit,
		},
		"withdraw": {
			usage:        "withdraw <amount>",
			summary:      "take money from your balance",
			needsSession: true,
			fallback:     app.MsgWithdrawFailed,
			run:          a.cmdWithdraw,
		},
		"transfer": {
			usage:        "transfer <username> <amount>",
			summary:      "send money to another user",
			needsSession: true,
			fallback:     app.MsgTransferFailed,
			run:          a.cmdTransfer,
		},
		"shell": {usage: "shell", summary: "start an interactive session (default)", run: a.cmdShell},
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"shell"}
	}
	return a.execute(ctx, args)
}

// execute runs one command, prints a user-facing message when it fails and
// returns the error for the exit status.
func (a *App) execute(ctx context.Context, args []string) error {
	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintf(a.out, "Unknown command %q. Run %q for a list of commands.\n", name, programName+" help")
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	err := a.requireSession(ctx, cmd)
	if err == nil {
		err = cmd.run(ctx, args[1:])
	}
	if err == nil {
		return nil
	}

	fmt.Fprintln(a.out, a.describe(err, cmd))
	a.logger.Err(err).
		Str("func", "*App.execute").
		Str("command", name).
		Msg("command failed")

	return fmt.Errorf("%s: %w", name, err)
}

func (a *App) describe(err error, cmd command) string {
	switch {
	case errors.Is(err, ErrUsage):
		return fmt.Sprintf("Usage: %s %s", programName, cmd.usage)
	case errors.Is(err, ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, ErrProfileNotLoaded):
		return service.UserMessage(err, app.MsgLoadProfileFailed)
	case errors.Is(err, store.ErrTokenNotPersisted):
		return app.MsgSaveLoginFailed
	default:
		return service.UserMessage(err, cmd.fallback)
	}
}

// requireSession loads the profile when no refresh has resolved yet and
// fails when no user is logged in.
func (a *App) requireSession(ctx context.Context, cmd command) error {
	if !cmd.needsSession {
		return nil
	}

	state := a.services.Session.State()
	if state.Loading {
		a.services.Session.Start(ctx)
		state = a.services.Session.State()
	}

	if state.Authenticated() {
		return nil
	}
	if state.Err != nil {
		return fmt.Errorf("%w: %w", ErrProfileNotLoaded, state.Err)
	}
	return ErrNotLoggedIn
}

func (a *App) cmdHelp(context.Context, []string) error {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(a.out, "Usage: %s <command> [arguments]\n\nCommands:\n", programName)
	tw := newTable(a.out)
	for _, name := range names {
		cmd := a.commands[name]
		if cmd.usage != name && !strings.HasPrefix(cmd.usage, name+" ") {
			// alias, listed under its main name
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.usage, cmd.summary)
	}
	return tw.Flush()
}

func (a *App) cmdVersion(context.Context, []string) error {
	_, err := fmt.Fprint(a.out, a.build.String())
	return err
}
