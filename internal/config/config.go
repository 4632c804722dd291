// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// remote-settings client. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// RemoteSettings selects the server and the bucket/collection to sync.
	RemoteSettings RemoteSettings `envPrefix:"REMOTE_SETTINGS_"`

	// Adapter holds settings of the outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// RemoteSettings holds the raw, textual server selection.
type RemoteSettings struct {
	// Server is a server name ("prod", "stage", "dev") or a custom
	// absolute URL.
	// Env: REMOTE_SETTINGS_SERVER
	Server string `env:"SERVER"`

	// ServerURL is the deprecated custom server override.
	// Env: REMOTE_SETTINGS_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// BucketName is the bucket containing the collection. Empty selects
	// the standard bucket.
	// Env: REMOTE_SETTINGS_BUCKET_NAME
	BucketName string `env:"BUCKET_NAME"`

	// CollectionName is the collection to sync. Required.
	// Env: REMOTE_SETTINGS_COLLECTION_NAME
	CollectionName string `env:"COLLECTION_NAME"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
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
