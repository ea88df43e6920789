// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes auth domain events (registrations, sign-ins,
// revocations) to Kafka for downstream consumers such as audit and
// notification services.
package events

import (
	"context"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=publisher.go -destination=../mock/publisher_mock.go -package=mock

// Publisher delivers auth events. Publishing is best-effort for callers:
// a failed publish never fails the auth operation that produced it.
type Publisher interface {
	Publish(ctx context.Context, event models.AuthEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when no brokers
// are configured.
func NewPublisher(cfg config.Broker, log *logger.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		log.Info().Msg("no brokers configured, auth events are not published")
		return NopPublisher{}
	}
	return NewKafkaPublisher(cfg, log)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.AuthEvent) error { return nil }
func (NopPublisher) Close() error                                    { return nil }
