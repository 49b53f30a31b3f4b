// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-shop-api application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Store holds connection settings for the hosted tabular store.
	// Deliberately unprefixed: SUPABASE_URL and SUPABASE_KEY are the
	// conventional variable names for Supabase projects.
	Store Store

	// Auth holds JWT session token parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// CORS holds the allow-list of browser origins.
	CORS CORS `envPrefix:"CORS_"`

	// LogLevel controls the global log verbosity
	// ("debug", "info", "warn", "error"). Empty means debug.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Store holds connection settings for the hosted tabular store backend.
type Store struct {
	// SupabaseURL is the base URL of the Supabase project
	// (e.g. "https://xyzcompany.supabase.co").
	// Env: SUPABASE_URL
	SupabaseURL string `env:"SUPABASE_URL"`

	// SupabaseKey is the project API key sent in the apikey and
	// Authorization headers of every store request. Must be kept
	// confidential.
	// Env: SUPABASE_KEY
	SupabaseKey string `env:"SUPABASE_KEY"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// store call. There is no retry: a timed-out call surfaces to the
	// client immediately.
	// Env: STORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"STORE_REQUEST_TIMEOUT"`
}

// Auth holds JWT session token parameters used by the login endpoint.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// CORS holds the browser origin allow-list applied by the CORS middleware.
type CORS struct {
	// AllowedOrigins is the list of origins permitted to call the API from
	// a browser. Defaults to the local development origins.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
