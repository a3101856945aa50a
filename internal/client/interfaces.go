// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Runner is a long-lived part of the application (the terminal UI, the local
// API server, the background workers). Run blocks until ctx is cancelled or
// the component finishes on its own.
type Runner interface {
	Run(ctx context.Context) error
}
