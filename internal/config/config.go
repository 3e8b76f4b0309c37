// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-user-registry/models"
)

// StructuredConfig is the top-level configuration container of the user
// registry. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification parameters, logging and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend configuration.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener, timeouts and transport middleware settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the shared HMAC secret used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAudience is the value that must be present in the "aud" claim.
	// Env: APP_TOKEN_AUDIENCE
	TokenAudience string `env:"TOKEN_AUDIENCE"`

	// DisableTokenLifetimeCheck turns off "exp"/"nbf" validation.
	// Env: APP_DISABLE_TOKEN_LIFETIME_CHECK
	DisableTokenLifetimeCheck bool `env:"DISABLE_TOKEN_LIFETIME_CHECK"`

	// TokenClockSkew is the leeway applied to time-based token claims.
	// Env: APP_TOKEN_CLOCK_SKEW
	TokenClockSkew time.Duration `env:"TOKEN_CLOCK_SKEW"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and transport settings of the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading of a whole request, body included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing of a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Empty disables CORS handling.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// RateLimit is the global number of requests per second admitted by the
	// rate limiter. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the rate limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the optional SQL backend.
type DB struct {
	// DSN selects the backend: empty keeps users in memory,
	// "postgres://" / "postgresql://" uses PostgreSQL through pgx,
	// anything else is treated as a SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// TokenValidationParams builds the immutable token verification bundle.
func (a App) TokenValidationParams() models.TokenValidationParams {
	return models.TokenValidationParams{
		Issuer:           a.TokenIssuer,
		Audience:         a.TokenAudience,
		SignKey:          a.TokenSignKey,
		ValidateLifetime: !a.DisableTokenLifetimeCheck,
		ClockSkew:        a.TokenClockSkew,
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in priority order (a field set by an
// earlier source is never overridden by a later one):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
