// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultTokenIssuer      = "go-job-board"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultRefreshGrace     = 7 * 24 * time.Hour
	DefaultPasswordHashCost = 12
	DefaultLogLevel         = "info"
	DefaultVersion          = "dev"

	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultGoogleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	DefaultGoogleUserInfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"
	DefaultGoogleTimeout      = 5 * time.Second

	DefaultBrokerTopic = "auth.events"

	DefaultServiceName = "go-job-board-auth"
	DefaultSampleRate  = 1.0

	DefaultServerURL             = "http://localhost:8080"
	DefaultClientRequestTimeout  = 10 * time.Second
	DefaultLocalDSN              = "job-board-session.db"
	DefaultVerifyInterval        = 5 * time.Minute
	DefaultVerifyTimeout         = 5 * time.Second
	DefaultRevocationSweepPeriod = time.Minute
	DefaultHealthCheckInterval   = 15 * time.Second
)

// applyDefaults fills every zero field that has a sensible default. Secrets,
// the database DSN and the Google client id have none.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&cfg.App.RefreshGrace, DefaultRefreshGrace)
	setDefault(&cfg.App.PasswordHashCost, DefaultPasswordHashCost)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.App.Version, DefaultVersion)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Google.TokenInfoURL, DefaultGoogleTokenInfoURL)
	setDefault(&cfg.Google.UserInfoURL, DefaultGoogleUserInfoURL)
	setDefault(&cfg.Google.Timeout, DefaultGoogleTimeout)

	setDefault(&cfg.Broker.Topic, DefaultBrokerTopic)

	setDefault(&cfg.Telemetry.ServiceName, DefaultServiceName)
	setDefault(&cfg.Telemetry.SampleRate, DefaultSampleRate)

	setDefault(&cfg.Adapter.ServerURL, DefaultServerURL)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultClientRequestTimeout)
	setDefault(&cfg.Storage.Local.DSN, DefaultLocalDSN)

	setDefault(&cfg.Workers.VerifyInterval, DefaultVerifyInterval)
	setDefault(&cfg.Workers.VerifyTimeout, DefaultVerifyTimeout)
	setDefault(&cfg.Workers.RevocationSweepInterval, DefaultRevocationSweepPeriod)
	setDefault(&cfg.Workers.HealthCheckInterval, DefaultHealthCheckInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
