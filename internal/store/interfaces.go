package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists credential records.
type UserRepository interface {
	// CreateUserWithProfile inserts user and its role profile in one
	// transaction and returns both with server-assigned fields.
	CreateUserWithProfile(ctx context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// FindUserByEmail matches the normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByExternalID(ctx context.Context, externalID string) (models.User, error)

	// BindExternalID sets the Google subject id of a user that has none.
	// Losing a concurrent bind or hitting an id owned by another user
	// returns [ErrExternalIDAlreadyBound].
	BindExternalID(ctx context.Context, userID int64, externalID string) (models.User, error)

	SetActive(ctx context.Context, userID int64, active bool) error
	// DeleteUser removes the user; profiles cascade.
	DeleteUser(ctx context.Context, userID int64) error
}

// ProfileFinder loads and updates one profile variant.
type ProfileFinder interface {
	FindByUserID(ctx context.Context, userID int64) (models.Profile, error)
	Update(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ProfileRepository dispatches profile access to the finder of each kind.
type ProfileRepository interface {
	FindProfile(ctx context.Context, kind models.ProfileKind, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// RevocationStore records server-side session revocation: single tokens by
// id and every token of a user issued before a cutoff.
type RevocationStore interface {
	// RevokeToken denylists jti for ttl, its remaining lifetime.
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeUser revokes every token of userID issued at or before cutoff.
	// The record is kept for ttl, the longest a token stays usable.
	RevokeUser(ctx context.Context, userID int64, cutoff time.Time, ttl time.Duration) error
	// UserRevokedAt returns the cutoff of userID, if any.
	UserRevokedAt(ctx context.Context, userID int64) (time.Time, bool, error)
}
