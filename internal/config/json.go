package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		RefreshGrace     Duration `json:"refresh_grace"`
		PasswordHashCost int      `json:"password_hash_cost"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Google struct {
		ClientID     string   `json:"client_id"`
		TokenInfoURL string   `json:"token_info_url"`
		UserInfoURL  string   `json:"user_info_url"`
		Timeout      Duration `json:"timeout"`
	} `json:"google,omitempty"`

	Broker struct {
		Brokers []string `json:"brokers"`
		Topic   string   `json:"topic"`
	} `json:"broker,omitempty"`

	Telemetry struct {
		TracingEnabled bool    `json:"tracing_enabled"`
		OTLPEndpoint   string  `json:"otlp_endpoint"`
		ServiceName    string  `json:"service_name"`
		SampleRate     float64 `json:"sample_rate"`
	} `json:"telemetry,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		VerifyInterval          Duration `json:"verify_interval"`
		VerifyTimeout           Duration `json:"verify_timeout"`
		RevocationSweepInterval Duration `json:"revocation_sweep_interval"`
		HealthCheckInterval     Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     j.App.TokenSignKey,
			TokenIssuer:      j.App.TokenIssuer,
			TokenDuration:    time.Duration(j.App.TokenDuration),
			RefreshGrace:     time.Duration(j.App.RefreshGrace),
			PasswordHashCost: j.App.PasswordHashCost,
			LogLevel:         j.App.LogLevel,
			Version:          j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
			Local: Local{DSN: j.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			GRPCAddress:     j.Server.GRPCAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
		},
		Google: Google{
			ClientID:     j.Google.ClientID,
			TokenInfoURL: j.Google.TokenInfoURL,
			UserInfoURL:  j.Google.UserInfoURL,
			Timeout:      time.Duration(j.Google.Timeout),
		},
		Broker: Broker{
			Brokers: j.Broker.Brokers,
			Topic:   j.Broker.Topic,
		},
		Telemetry: Telemetry{
			TracingEnabled: j.Telemetry.TracingEnabled,
			OTLPEndpoint:   j.Telemetry.OTLPEndpoint,
			ServiceName:    j.Telemetry.ServiceName,
			SampleRate:     j.Telemetry.SampleRate,
		},
		Adapter: Adapter{
			ServerURL:      j.Adapter.ServerURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			VerifyInterval:          time.Duration(j.Workers.VerifyInterval),
			VerifyTimeout:           time.Duration(j.Workers.VerifyTimeout),
			RevocationSweepInterval: time.Duration(j.Workers.RevocationSweepInterval),
			HealthCheckInterval:     time.Duration(j.Workers.HealthCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings or
// from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
