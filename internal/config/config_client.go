package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel string
	Version  string
}

// ClientAdapter holds client transport settings.
type ClientAdapter struct {
	// ServerURL is the server base URL; the push channel lives at /ws on it.
	ServerURL string
	// RequestTimeout is the default timeout of outbound requests.
	RequestTimeout time.Duration
}

// ClientDB holds the local session database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds session lifecycle timings.
type ClientWorkers struct {
	// VerifyInterval is the period of session re-verification.
	VerifyInterval time.Duration
	// VerifyTimeout bounds a single verification call.
	VerifyTimeout time.Duration
}

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the shared sources and maps the fields relevant to
// the client runtime. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		Workers: ClientWorkers{
			VerifyInterval: cfg.Workers.VerifyInterval,
			VerifyTimeout:  cfg.Workers.VerifyTimeout,
		},
	}
}
