package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/provider"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/tracing"
	"github.com/MKhiriev/go-job-board/models"
	"go.opentelemetry.io/otel/attribute"
)

// googleSignInService is the external identity credential issuer.
//
// Sign-up policy: only the candidate endpoint may create accounts, because
// it is the only one that knows which role to give. The role-agnostic
// endpoint signs in existing accounts and answers [ErrUnknownIdentity]
// otherwise.
type googleSignInService struct {
	provider  provider.IdentityProvider
	users     store.UserRepository
	profiles  store.ProfileRepository
	codec     TokenCodec
	publisher events.Publisher

	clientID      string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewGoogleSignInService(
	identityProvider provider.IdentityProvider,
	users store.UserRepository,
	profiles store.ProfileRepository,
	codec TokenCodec,
	publisher events.Publisher,
	clientID string,
	tokenDuration time.Duration,
	logger *logger.Logger,
) GoogleSignInService {
	return &googleSignInService{
		provider:      identityProvider,
		users:         users,
		profiles:      profiles,
		codec:         codec,
		publisher:     publisher,
		clientID:      clientID,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

func (g *googleSignInService) SignIn(ctx context.Context, accessToken string) (models.AuthResult, error) {
	return g.signIn(ctx, accessToken, false)
}

func (g *googleSignInService) SignInCandidate(ctx context.Context, accessToken string) (models.AuthResult, error) {
	return g.signIn(ctx, accessToken, true)
}

func (g *googleSignInService) signIn(ctx context.Context, accessToken string, allowSignup bool) (result models.AuthResult, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "GoogleSignInService.signIn")
	span.SetAttributes(attribute.Bool("auth.allow_signup", allowSignup))
	defer func() {
		observeAttempt(models.AuthMethodGoogle, err)
		span.End()
	}()

	if strings.TrimSpace(accessToken) == "" {
		return models.AuthResult{}, invalidData(errors.New("google access token is required"))
	}

	identity, err := g.provider.Introspect(ctx, accessToken)
	switch {
	case errors.Is(err, provider.ErrUnavailable):
		logger.FromContext(ctx).Warn().Err(err).Msg("google introspection unavailable")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	case errors.Is(err, provider.ErrRejectedToken):
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	case err != nil:
		return models.AuthResult{}, serverFault(ctx, "*googleSignInService.signIn", err, "google introspection failed")
	}

	if identity.Audience != g.clientID {
		logger.FromContext(ctx).Warn().Str("aud", identity.Audience).Msg("google token issued to another client")
		return models.AuthResult{}, ErrAudienceMismatch
	}
	if identity.Email == "" || !identity.EmailVerified {
		return models.AuthResult{}, ErrUnverifiedIdentity
	}

	user, profile, err := g.resolve(ctx, identity, allowSignup)
	if err != nil {
		return models.AuthResult{}, err
	}
	if !user.IsActive {
		return models.AuthResult{}, ErrUserInactive
	}

	tok, err := g.codec.Mint(user.UserID, user.Role, g.tokenDuration)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*googleSignInService.signIn", err, "token minting failed")
	}

	publish(ctx, g.publisher, models.AuthEvent{
		Type:   models.AuthEventUserSignedIn,
		UserID: user.UserID,
		Role:   user.Role,
		Method: models.AuthMethodGoogle,
	})

	return models.AuthResult{Token: tok, User: user, Profile: profile}, nil
}

// resolve maps identity onto a user: by bound subject, then by email with
// a conditional bind, then by creating a candidate when allowed.
func (g *googleSignInService) resolve(ctx context.Context, identity models.ExternalIdentity, allowSignup bool) (models.User, models.Profile, error) {
	user, err := g.users.FindUserByExternalID(ctx, identity.Subject)
	switch {
	case err == nil:
		return g.withProfile(ctx, user)
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, nil, serverFault(ctx, "*googleSignInService.resolve", err, "user search by google id failed")
	}

	user, err = g.users.FindUserByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		if !allowSignup {
			return models.User{}, nil, ErrUnknownIdentity
		}
		return g.createCandidate(ctx, identity)
	case err != nil:
		return models.User{}, nil, serverFault(ctx, "*googleSignInService.resolve", err, "user search by email failed")
	}

	// the subject lookup missed, so a bound id here belongs to someone else
	if user.HasExternalIdentity() {
		return models.User{}, nil, ErrIdentityConflict
	}

	bound, err := g.users.BindExternalID(ctx, user.UserID, identity.Subject)
	if errors.Is(err, store.ErrExternalIDAlreadyBound) {
		return models.User{}, nil, ErrIdentityConflict
	}
	if err != nil {
		return models.User{}, nil, serverFault(ctx, "*googleSignInService.resolve", err, "google id bind failed")
	}

	publish(ctx, g.publisher, models.AuthEvent{
		Type:   models.AuthEventIdentityLinked,
		UserID: bound.UserID,
		Role:   bound.Role,
		Method: models.AuthMethodGoogle,
	})
	logger.FromContext(ctx).Info().Int64("user_id", bound.UserID).Msg("google identity linked")

	return g.withProfile(ctx, bound)
}

func (g *googleSignInService) createCandidate(ctx context.Context, identity models.ExternalIdentity) (models.User, models.Profile, error) {
	subject := identity.Subject
	user, profile, err := g.users.CreateUserWithProfile(ctx, models.User{
		Email:           identity.Email,
		GoogleID:        &subject,
		Role:            models.RoleCandidate,
		IsActive:        true,
		IsEmailVerified: true,
	}, models.CandidateProfile{
		FirstName: identity.GivenName,
		LastName:  identity.FamilyName,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrExternalIDAlreadyBound) {
		return models.User{}, nil, ErrIdentityConflict
	}
	if err != nil {
		return models.User{}, nil, serverFault(ctx, "*googleSignInService.createCandidate", err, "candidate creation failed")
	}

	publish(ctx, g.publisher, models.AuthEvent{
		Type:   models.AuthEventUserRegistered,
		UserID: user.UserID,
		Role:   user.Role,
		Method: models.AuthMethodGoogle,
	})

	return user, profile, nil
}

func (g *googleSignInService) withProfile(ctx context.Context, user models.User) (models.User, models.Profile, error) {
	profile, err := g.profiles.FindProfile(ctx, user.Role.ProfileKind(), user.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.User{}, nil, ErrProfileMissing
	}
	if err != nil {
		return models.User{}, nil, serverFault(ctx, "*googleSignInService.withProfile", err, "profile lookup failed")
	}
	return user, profile, nil
}
