// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI, the optional local HTTP API and the background
// workers under one context, and releases the sync engine resources once all
// of them have stopped.
package client
