package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "auth.events", logger.Nop())
	occurred := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), models.AuthEvent{
		Type:       models.AuthEventUserSignedIn,
		UserID:     42,
		Role:       models.RoleCandidate,
		Method:     models.AuthMethodGoogle,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "auth.events", msg.Topic)
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, []kafka.Header{
		{Key: "event_type", Value: []byte("user.signed_in")},
		{Key: "source", Value: []byte(Source)},
	}, msg.Headers)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.NotEmpty(t, envelope.EventID)
	assert.Equal(t, models.AuthEventUserSignedIn, envelope.EventType)
	assert.Equal(t, occurred, envelope.Timestamp)
	assert.Equal(t, models.AuthMethodGoogle, envelope.Data.Method)
}

func TestKafkaPublisher_StampsOccurredAt(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "auth.events", logger.Nop())

	require.NoError(t, p.Publish(context.Background(), models.AuthEvent{Type: models.AuthEventUserDeleted, UserID: 1}))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &envelope))
	assert.WithinDuration(t, time.Now(), envelope.Timestamp, time.Minute)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writeErr := errors.New("broker down")
	w := &fakeWriter{err: writeErr}
	p := newKafkaPublisher(w, "auth.events", logger.Nop())

	err := p.Publish(context.Background(), models.AuthEvent{Type: models.AuthEventUserSuspended, UserID: 3})
	assert.ErrorIs(t, err, writeErr)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNewPublisher(t *testing.T) {
	assert.IsType(t, NopPublisher{}, NewPublisher(config.Broker{}, logger.Nop()))

	p := NewPublisher(config.Broker{Brokers: []string{"localhost:9092"}, Topic: "auth.events"}, logger.Nop())
	assert.IsType(t, &KafkaPublisher{}, p)
	assert.NoError(t, p.Close())
}
