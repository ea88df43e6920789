package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs covers token and hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs covers database DSNs.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs covers listen addresses and timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGoogleConfigs covers the identity provider settings.
	ErrInvalidGoogleConfigs = errors.New("invalid google configuration")
	// ErrInvalidTelemetryConfigs covers tracing settings.
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
	// ErrInvalidAdapterConfigs covers the client's server URL and timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs covers background job intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
