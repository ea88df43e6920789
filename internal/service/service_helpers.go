package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/metrics"
	"github.com/MKhiriev/go-job-board/internal/token"
	"github.com/MKhiriev/go-job-board/models"
)

// serverFault logs err with the calling function and hides it behind
// [ErrServerFault].
func serverFault(ctx context.Context, fn string, err error, msg string) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg(msg)
	return fmt.Errorf("%w: %w", ErrServerFault, err)
}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidData, err)
}

// mapCodecError collapses codec failures into [ErrUnauthenticated] variants.
func mapCodecError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}

func publish(ctx context.Context, publisher events.Publisher, event models.AuthEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("event_type", event.Type).Msg("auth event was not published")
	}
}

// outcome is the metrics label of err.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrDuplicateIdentity):
		return "duplicate"
	case errors.Is(err, ErrUnverifiedIdentity):
		return "unverified"
	case errors.Is(err, ErrAudienceMismatch):
		return "audience_mismatch"
	case errors.Is(err, ErrUnknownIdentity):
		return "unknown_identity"
	case errors.Is(err, ErrIdentityConflict):
		return "identity_conflict"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}

func observeAttempt(method string, err error) {
	metrics.AuthAttemptsTotal.WithLabelValues(method, outcome(err)).Inc()
}
