// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// test seams for the terminal
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompt prints label and reads one line. A final line without a trailing
// newline is accepted.
func (a *App) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(a.out, label); err != nil {
		return "", err
	}

	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a password without echo when input is a terminal and
// falls back to a plain line read otherwise, so passwords can be piped in.
func (a *App) promptSecret(label string) (string, error) {
	f, ok := a.stdin.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return a.prompt(label)
	}

	if _, err := fmt.Fprint(a.out, label); err != nil {
		return "", err
	}
	secret, err := readPassword(int(f.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}
