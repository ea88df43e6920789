// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	minPasswordHashCost = 10
	maxPasswordHashCost = 31
	minTokenSignKeyLen  = 16
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLen {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLen)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.RefreshGrace < 0 {
		return fmt.Errorf("%w: token issuer, duration and refresh grace", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d out of [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, minPasswordHashCost, maxPasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http address and request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Google.ClientID == "" || cfg.Google.TokenInfoURL == "" || cfg.Google.UserInfoURL == "" {
		return fmt.Errorf("%w: client id and endpoints are required", ErrInvalidGoogleConfigs)
	}

	if cfg.Telemetry.TracingEnabled && cfg.Telemetry.OTLPEndpoint == "" {
		return fmt.Errorf("%w: tracing enabled without an OTLP endpoint", ErrInvalidTelemetryConfigs)
	}
	if cfg.Telemetry.SampleRate < 0 || cfg.Telemetry.SampleRate > 1 {
		return fmt.Errorf("%w: sample rate must be in [0, 1]", ErrInvalidTelemetryConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.VerifyInterval <= 0 || cfg.Workers.VerifyTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
