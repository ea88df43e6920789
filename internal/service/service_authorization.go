package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/metrics"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/models"
)

type authorizationService struct {
	codec       TokenCodec
	revocations store.RevocationStore
	users       store.UserRepository
	profiles    store.ProfileRepository

	logger *logger.Logger
}

// NewAuthorizationService builds the gatekeeper shared by the HTTP
// middleware and the push channel handshake.
func NewAuthorizationService(
	codec TokenCodec,
	revocations store.RevocationStore,
	users store.UserRepository,
	profiles store.ProfileRepository,
	logger *logger.Logger,
) AuthorizationService {
	return &authorizationService{
		codec:       codec,
		revocations: revocations,
		users:       users,
		profiles:    profiles,
		logger:      logger,
	}
}

// Authorize walks NoToken -> TokenInvalid -> UserMissing -> RoleMismatch ->
// ProfileMissing and returns the principal when every check passes.
// Revocation store failures deny access.
func (s *authorizationService) Authorize(ctx context.Context, rawToken string, allowed models.RoleSet) (principal models.Principal, err error) {
	defer func() {
		metrics.AuthorizationDecisionsTotal.WithLabelValues(outcome(err)).Inc()
	}()

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return models.Principal{}, ErrNoToken
	}

	tok, err := s.codec.Verify(rawToken)
	if err != nil {
		return models.Principal{}, mapCodecError(err)
	}

	if err = s.checkRevoked(ctx, tok); err != nil {
		return models.Principal{}, err
	}

	user, err := s.users.FindUserByID(ctx, tok.SubjectID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Principal{}, ErrUserMissing
	}
	if err != nil {
		return models.Principal{}, serverFault(ctx, "*authorizationService.Authorize", err, "user lookup failed")
	}
	if !user.IsActive {
		return models.Principal{}, ErrUserInactive
	}

	if !allowed.Contains(user.Role) {
		logger.FromContext(ctx).Debug().
			Int64("user_id", user.UserID).
			Str("role", user.Role.String()).
			Msg("role not allowed")
		return models.Principal{}, ErrRoleMismatch
	}

	profile, err := s.profiles.FindProfile(ctx, user.Role.ProfileKind(), user.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.Principal{}, ErrProfileMissing
	}
	if err != nil {
		return models.Principal{}, serverFault(ctx, "*authorizationService.Authorize", err, "profile lookup failed")
	}

	return models.Principal{Token: tok, User: user, Profile: profile}, nil
}

func (s *authorizationService) checkRevoked(ctx context.Context, tok models.Token) error {
	revoked, err := s.revocations.IsTokenRevoked(ctx, tok.ID)
	if err != nil {
		return serverFault(ctx, "*authorizationService.checkRevoked", err, "revocation check failed")
	}
	if revoked {
		return ErrTokenRevoked
	}

	cutoff, ok, err := s.revocations.UserRevokedAt(ctx, tok.SubjectID)
	if err != nil {
		return serverFault(ctx, "*authorizationService.checkRevoked", err, "user revocation check failed")
	}
	if ok && !tok.IssuedAt.After(cutoff) {
		return ErrTokenRevoked
	}
	return nil
}
