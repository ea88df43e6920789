// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the auth server and
// the source of the client's [ClientConfig] view.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the Postgres, Redis and client SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Google holds the external identity provider settings.
	Google Google `envPrefix:"GOOGLE_"`

	// Broker holds the Kafka settings of the auth event publisher.
	Broker Broker `envPrefix:"BROKER_"`

	// Telemetry holds OpenTelemetry tracing settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HS256 secret of session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim stamped into and required from every
	// session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of every session token,
	// whichever credential issued it.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshGrace is how long after expiry a token may still be exchanged
	// at /auth/refresh.
	// Env: APP_REFRESH_GRACE
	RefreshGrace time.Duration `env:"REFRESH_GRACE"`

	// PasswordHashCost is the bcrypt cost of new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by /version when no build version is linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence backends.
type Storage struct {
	// DB is the server Postgres database.
	DB DB `envPrefix:"DB_"`

	// Redis backs the token revocation store. Empty address selects the
	// in-memory store.
	Redis Redis `envPrefix:"REDIS_"`

	// Local is the client SQLite session file.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds Postgres connection settings.
type DB struct {
	// DSN is the Postgres connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds revocation store connection settings.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Local holds the client session database path.
type Local struct {
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port of the HTTP server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health server; empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Google holds OAuth access token introspection settings.
type Google struct {
	// ClientID is the required audience of introspected access tokens.
	// Env: GOOGLE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Env: GOOGLE_TOKEN_INFO_URL
	TokenInfoURL string `env:"TOKEN_INFO_URL"`

	// Env: GOOGLE_USER_INFO_URL
	UserInfoURL string `env:"USER_INFO_URL"`

	// Timeout bounds each provider call.
	// Env: GOOGLE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Broker holds auth event publisher settings. No brokers disables
// publishing.
type Broker struct {
	// Env: BROKER_BROKERS (comma separated)
	Brokers []string `env:"BROKERS" envSeparator:","`
	// Env: BROKER_TOPIC
	Topic string `env:"TOPIC"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	// Env: TELEMETRY_TRACING_ENABLED
	TracingEnabled bool `env:"TRACING_ENABLED"`
	// OTLPEndpoint is the host:port of the OTLP/HTTP collector.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
	// SampleRate is the trace sampling ratio in [0, 1].
	// Env: TELEMETRY_SAMPLE_RATE
	SampleRate float64 `env:"SAMPLE_RATE"`
}

// Adapter holds client-side settings for reaching the server.
type Adapter struct {
	// ServerURL is the server base URL (scheme optional).
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds each client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// VerifyInterval is how often the client re-verifies its session.
	// Env: WORKERS_VERIFY_INTERVAL
	VerifyInterval time.Duration `env:"VERIFY_INTERVAL"`

	// VerifyTimeout bounds a single verification call.
	// Env: WORKERS_VERIFY_TIMEOUT
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT"`

	// RevocationSweepInterval is how often the in-memory revocation store
	// drops expired entries.
	// Env: WORKERS_REVOCATION_SWEEP_INTERVAL
	RevocationSweepInterval time.Duration `env:"REVOCATION_SWEEP_INTERVAL"`

	// HealthCheckInterval is how often the gRPC health status is refreshed
	// from the stores.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from environment
// variables, command-line flags and an optional JSON file, in that priority
// order, applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
