// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database and the
	// attachment file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the production-tracking service client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// API holds settings of the local HTTP API served to rendering layers
	// running out of process.
	API API `envPrefix:"API_"`

	// Workers holds intervals of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserName is the display name attached to published notes.
	// Env: APP_USER_NAME
	UserName string `env:"USER_NAME"`

	// LogFile is the path of the client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the attachment file store settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "review.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for attachment content.
type Files struct {
	// AttachmentDir is the directory where attachment bytes are stored.
	// Env: STORAGE_FILES_ATTACHMENT_DIR
	AttachmentDir string `env:"ATTACHMENT_DIR"`
}

// Adapter holds configuration of the production-tracking service client.
type Adapter struct {
	// HTTPAddress is the base address of the tracking service
	// (e.g. "https://tracking.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of outbound requests per second.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// Token is the bearer token sent to the tracking service.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// API holds settings of the local HTTP API.
type API struct {
	// HTTPAddress is the listen address in "host:port" form. Empty disables
	// the API.
	// Env: API_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PollInterval is the period of the playlist polling cycle.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// TombstoneRetention is how long removed version records are kept
	// before the janitor may purge them.
	// Env: WORKERS_TOMBSTONE_RETENTION
	TombstoneRetention time.Duration `env:"TOMBSTONE_RETENTION"`

	// JanitorInterval is the period of the tombstone janitor.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
