package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig(t *testing.T) *StructuredConfig {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "0123456789abcdef-secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/jobs"}},
		Google:  Google{ClientID: "client-id"},
	})
	cfg, err := b.build()
	require.NoError(t, err)
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "short sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "short" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 4 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing google client id", mutate: func(c *StructuredConfig) { c.Google.ClientID = "" }, wantErr: ErrInvalidGoogleConfigs},
		{name: "tracing without endpoint", mutate: func(c *StructuredConfig) { c.Telemetry.TracingEnabled = true }, wantErr: ErrInvalidTelemetryConfigs},
		{name: "sample rate above one", mutate: func(c *StructuredConfig) { c.Telemetry.SampleRate = 1.5 }, wantErr: ErrInvalidTelemetryConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig(t)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := validServerConfig(t)

	clientCfg := NewClientConfig(cfg)
	require.NoError(t, clientCfg.validate())
	assert.Equal(t, DefaultServerURL, clientCfg.Adapter.ServerURL)
	assert.Equal(t, DefaultLocalDSN, clientCfg.Storage.DB.DSN)
	assert.Equal(t, DefaultVerifyInterval, clientCfg.Workers.VerifyInterval)
	assert.Equal(t, DefaultVerifyTimeout, clientCfg.Workers.VerifyTimeout)

	clientCfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidStorageConfigs)

	clientCfg = NewClientConfig(cfg)
	clientCfg.Adapter.ServerURL = ""
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidAdapterConfigs)

	clientCfg = NewClientConfig(cfg)
	clientCfg.Workers.VerifyInterval = 0
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidWorkerConfigs)
}
