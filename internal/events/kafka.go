// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/segmentio/kafka-go"
)

// Source is stamped into the envelope and the "source" header.
const Source = "go-job-board-auth"

// Envelope is the JSON value of every published message.
type Envelope struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Source    string           `json:"source"`
	Timestamp time.Time        `json:"timestamp"`
	Data      models.AuthEvent `json:"data"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to one topic keyed by user id, so events of
// one user stay ordered within a partition. The production writer is
// asynchronous: Publish returns once the message is queued and delivery
// failures are logged from the completion callback.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewKafkaPublisher(cfg config.Broker, log *logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Err(err).Int("messages", len(messages)).Str("topic", cfg.Topic).Msg("failed to deliver auth events")
			}
		},
	}
	return newKafkaPublisher(w, cfg.Topic, log)
}

func newKafkaPublisher(w messageWriter, topic string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, ids: utils.NewUUIDGenerator(), logger: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.AuthEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(Envelope{
		EventID:   p.ids.Generate(),
		EventType: event.Type,
		Source:    Source,
		Timestamp: event.OccurredAt,
		Data:      event,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "source", Value: []byte(Source)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Err(err).
			Str("func", "*KafkaPublisher.Publish").
			Str("topic", p.topic).
			Str("event_type", event.Type).
			Msg("failed to publish event")
		return fmt.Errorf("publish event to %s: %w", p.topic, err)
	}

	p.logger.Debug().
		Str("topic", p.topic).
		Str("event_type", event.Type).
		Int64("user_id", event.UserID).
		Msg("event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
