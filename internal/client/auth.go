// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-bank-client/internal/app"
	"github.com/MKhiriev/go-bank-client/models"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}

	var creds models.Credentials
	var err error
	if len(args) == 1 {
		creds.Username = args[0]
	} else if creds.Username, err = a.prompt("Username (email): "); err != nil {
		return err
	}
	if creds.Password, err = a.promptSecret("Password: "); err != nil {
		return err
	}

	if err = a.services.Auth.Login(ctx, creds); err != nil {
		return err
	}
	a.printWelcome()
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "display name")
	imagePath := fs.String("image", "", "profile picture file")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}

	reg := models.Registration{Name: *name}
	var err error
	if fs.NArg() == 1 {
		reg.Username = fs.Arg(0)
	} else if reg.Username, err = a.prompt("Username: "); err != nil {
		return err
	}
	if reg.Password, err = a.promptSecret("Password: "); err != nil {
		return err
	}
	if reg.PasswordConfirmation, err = a.promptSecret("Confirm password: "); err != nil {
		return err
	}

	if *imagePath != "" {
		f, err := os.Open(*imagePath)
		if err != nil {
			return fmt.Errorf("open profile picture: %w", err)
		}
		defer f.Close()

		reg.Image = &models.Upload{
			FileName:    filepath.Base(*imagePath),
			ContentType: mime.TypeByExtension(filepath.Ext(*imagePath)),
			Reader:      f,
		}
	}

	if err = a.services.Auth.Register(ctx, reg); err != nil {
		return err
	}
	a.printWelcome()
	return nil
}

// printWelcome reports the outcome of a successful login. The profile may be
// missing when the token was accepted but /auth/me failed.
func (a *App) printWelcome() {
	state := a.services.Session.State()
	if state.Profile == nil {
		fmt.Fprintln(a.out, "Logged in.")
		if state.Err != nil {
			fmt.Fprintln(a.out, app.MsgLoadProfileFailed)
		}
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", state.Profile.DisplayName())
}

func (a *App) cmdLogout(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := a.services.Auth.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, app.MsgLoggedOut)
	return err
}
