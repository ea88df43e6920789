// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. List values such as BROKER_BROKERS
// are trimmed and empty items are dropped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Broker.Brokers = compactList(cfg.Broker.Brokers)
	return nil
}

func compactList(items []string) []string {
	if len(items) == 0 {
		return items
	}

	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
