package store

import (
	"context"

	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository is the durable client copy of the session.
type LocalSessionRepository interface {
	Save(ctx context.Context, session models.LocalSession) error
	// Load returns [ErrLocalSessionNotFound] when nothing is stored.
	Load(ctx context.Context) (models.LocalSession, error)
	Clear(ctx context.Context) error
}
