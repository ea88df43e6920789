package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/app"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/metrics"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/models"
)

type sessionService struct {
	codec       TokenCodec
	revocations store.RevocationStore
	users       store.UserRepository
	profiles    store.ProfileRepository
	notifier    SessionNotifier
	publisher   events.Publisher

	tokenDuration time.Duration
	// refreshGrace is how long after expiry a token may still be refreshed.
	refreshGrace time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionService(
	codec TokenCodec,
	revocations store.RevocationStore,
	users store.UserRepository,
	profiles store.ProfileRepository,
	notifier SessionNotifier,
	publisher events.Publisher,
	tokenDuration, refreshGrace time.Duration,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		codec:         codec,
		revocations:   revocations,
		users:         users,
		profiles:      profiles,
		notifier:      notifier,
		publisher:     publisher,
		tokenDuration: tokenDuration,
		refreshGrace:  refreshGrace,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *sessionService) Logout(ctx context.Context, principal models.Principal) error {
	if err := s.revokeToken(ctx, principal.Token); err != nil {
		return err
	}
	s.notifier.DisconnectToken(ctx, principal.Token.ID)

	publish(ctx, s.publisher, models.AuthEvent{
		Type:   models.AuthEventSessionRevoked,
		UserID: principal.User.UserID,
		Role:   principal.User.Role,
		Reason: "logout",
	})
	return nil
}

// Refresh accepts tokens expired less than refreshGrace ago. The user must
// still exist, be active and own a profile; the old token is revoked.
func (s *sessionService) Refresh(ctx context.Context, rawToken string) (result models.AuthResult, err error) {
	defer func() { observeAttempt(models.AuthMethodRefresh, err) }()

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return models.AuthResult{}, ErrNoToken
	}

	old, err := s.codec.VerifyWithGrace(rawToken, s.refreshGrace)
	if err != nil {
		return models.AuthResult{}, mapCodecError(err)
	}

	revoked, err := s.revocations.IsTokenRevoked(ctx, old.ID)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "revocation check failed")
	}
	if revoked {
		return models.AuthResult{}, ErrTokenRevoked
	}
	cutoff, ok, err := s.revocations.UserRevokedAt(ctx, old.SubjectID)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "user revocation check failed")
	}
	if ok && !old.IssuedAt.After(cutoff) {
		return models.AuthResult{}, ErrTokenRevoked
	}

	user, err := s.users.FindUserByID(ctx, old.SubjectID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.AuthResult{}, ErrUserMissing
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "user lookup failed")
	}
	if !user.IsActive {
		return models.AuthResult{}, ErrUserInactive
	}

	profile, err := s.profiles.FindProfile(ctx, user.Role.ProfileKind(), user.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.AuthResult{}, ErrProfileMissing
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "profile lookup failed")
	}

	fresh, err := s.codec.Mint(user.UserID, user.Role, s.tokenDuration)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "token minting failed")
	}

	// keep the old token denylisted until it could no longer be refreshed
	if err = s.revocations.RevokeToken(ctx, old.ID, old.RemainingTTL(s.now())+s.refreshGrace); err != nil {
		return models.AuthResult{}, serverFault(ctx, "*sessionService.Refresh", err, "old token revocation failed")
	}
	metrics.RevocationsTotal.WithLabelValues("refresh").Inc()

	return models.AuthResult{Token: fresh, User: user, Profile: profile}, nil
}

func (s *sessionService) SuspendUser(ctx context.Context, actor models.Principal, userID int64, reason string) error {
	target, err := s.target(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err = s.users.SetActive(ctx, target.UserID, false); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserMissing
		}
		return serverFault(ctx, "*sessionService.SuspendUser", err, "user suspension failed")
	}
	if err = s.revokeUser(ctx, target.UserID, "suspend"); err != nil {
		return err
	}

	reason = reasonOrDefault(reason, app.MsgReasonSuspended)
	s.notifier.NotifyUser(ctx, target.UserID, models.NewPushEvent(models.EventUserSuspended, target.UserID, reason))
	publish(ctx, s.publisher, models.AuthEvent{
		Type:   models.AuthEventUserSuspended,
		UserID: target.UserID,
		Role:   target.Role,
		Reason: reason,
	})
	logger.FromContext(ctx).Info().Int64("user_id", target.UserID).Int64("by", actor.User.UserID).Msg("user suspended")
	return nil
}

func (s *sessionService) ForceLogoutUser(ctx context.Context, actor models.Principal, userID int64, reason string) error {
	target, err := s.target(ctx, actor, userID)
	if err != nil {
		return err
	}
	if err = s.revokeUser(ctx, target.UserID, "force_logout"); err != nil {
		return err
	}

	reason = reasonOrDefault(reason, app.MsgReasonLoggedOut)
	s.notifier.NotifyUser(ctx, target.UserID, models.NewPushEvent(models.EventForcedLogout, target.UserID, reason))
	publish(ctx, s.publisher, models.AuthEvent{
		Type:   models.AuthEventSessionRevoked,
		UserID: target.UserID,
		Role:   target.Role,
		Reason: reason,
	})
	return nil
}

func (s *sessionService) DeleteUser(ctx context.Context, actor models.Principal, userID int64) error {
	target, err := s.target(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err = s.users.DeleteUser(ctx, target.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserMissing
		}
		return serverFault(ctx, "*sessionService.DeleteUser", err, "user deletion failed")
	}
	// the middleware already rejects missing users, the cutoff covers the
	// refresh path
	if err = s.revokeUser(ctx, target.UserID, "delete"); err != nil {
		return err
	}

	s.notifier.NotifyUser(ctx, target.UserID, models.NewPushEvent(models.EventUserDeleted, target.UserID, app.MsgReasonDeleted))
	publish(ctx, s.publisher, models.AuthEvent{
		Type:   models.AuthEventUserDeleted,
		UserID: target.UserID,
		Role:   target.Role,
	})
	logger.FromContext(ctx).Info().Int64("user_id", target.UserID).Int64("by", actor.User.UserID).Msg("user deleted")
	return nil
}

// target loads the user an admin action applies to. Admins cannot act on
// themselves or on superadmins.
func (s *sessionService) target(ctx context.Context, actor models.Principal, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, invalidData(errors.New("user id must be positive"))
	}
	if userID == actor.User.UserID {
		return models.User{}, ErrForbidden
	}

	target, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserMissing
	}
	if err != nil {
		return models.User{}, serverFault(ctx, "*sessionService.target", err, "user lookup failed")
	}
	if target.Role == models.RoleSuperAdmin && actor.User.Role != models.RoleSuperAdmin {
		return models.User{}, ErrForbidden
	}
	return target, nil
}

func (s *sessionService) revokeToken(ctx context.Context, tok models.Token) error {
	if err := s.revocations.RevokeToken(ctx, tok.ID, tok.RemainingTTL(s.now())+s.refreshGrace); err != nil {
		return serverFault(ctx, "*sessionService.revokeToken", err, "token revocation failed")
	}
	metrics.RevocationsTotal.WithLabelValues("logout").Inc()
	return nil
}

// revokeUser revokes every token of userID issued up to now. The record
// outlives the longest token plus its refresh grace.
func (s *sessionService) revokeUser(ctx context.Context, userID int64, kind string) error {
	if err := s.revocations.RevokeUser(ctx, userID, s.now().UTC(), s.tokenDuration+s.refreshGrace); err != nil {
		return serverFault(ctx, "*sessionService.revokeUser", err, "user revocation failed")
	}
	metrics.RevocationsTotal.WithLabelValues(kind).Inc()
	return nil
}

func reasonOrDefault(reason, fallback string) string {
	if reason = strings.TrimSpace(reason); reason != "" {
		return reason
	}
	return fallback
}
