// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and returns when it is done.
	// An empty args starts the interactive shell, which blocks until the
	// user quits or ctx is cancelled.
	Run(ctx context.Context, args []string) error
}
