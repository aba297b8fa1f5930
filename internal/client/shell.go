// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const shellPrompt = "bank> "

// cmdShell reads commands line by line until "exit", end of input or ctx is
// cancelled. The refresh job keeps the profile current meanwhile. Command
// failures are printed and do not end the shell.
func (a *App) cmdShell(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	a.services.Session.Start(ctx)
	a.workers.Start(ctx)
	defer a.workers.Stop()

	fmt.Fprintln(a.out, `Type "help" for a list of commands, "exit" to quit.`)
	for ctx.Err() == nil {
		fmt.Fprint(a.out, shellPrompt)

		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) > 0 {
			switch fields[0] {
			case "exit", "quit":
				return nil
			case "shell":
				fmt.Fprintln(a.out, "Already in the shell.")
			default:
				_ = a.execute(ctx, fields)
			}
		}

		if err != nil {
			fmt.Fprintln(a.out)
			return nil
		}
	}
	return nil
}
