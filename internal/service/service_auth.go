package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/tracing"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
	"go.opentelemetry.io/otel/attribute"
)

// authService is the password credential issuer.
type authService struct {
	users     store.UserRepository
	profiles  store.ProfileRepository
	hasher    crypto.PasswordHasher
	codec     TokenCodec
	validator validators.Validator
	publisher events.Publisher

	// tokenDuration is the validity window of every minted token.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs the password credential issuer. The returned
// service is safe for concurrent use.
func NewAuthService(
	users store.UserRepository,
	profiles store.ProfileRepository,
	hasher crypto.PasswordHasher,
	codec TokenCodec,
	validator validators.Validator,
	publisher events.Publisher,
	tokenDuration time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		profiles:      profiles,
		hasher:        hasher,
		codec:         codec,
		validator:     validator,
		publisher:     publisher,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

func (a *authService) RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) (models.AuthResult, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, invalidData(err)
	}

	return a.register(ctx, models.Registration{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleCandidate,
		Profile: models.CandidateProfile{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			BirthDate: req.BirthDate,
		},
	})
}

func (a *authService) RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) (models.AuthResult, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, invalidData(err)
	}

	return a.register(ctx, models.Registration{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleRecruiter,
		Profile: models.RecruiterProfile{
			CompanyName: strings.TrimSpace(req.CompanyName),
			Sector:      strings.TrimSpace(req.Sector),
		},
	})
}

// register creates the user and its profile atomically and signs the new
// user in. The role is fixed by the caller, never by the request.
func (a *authService) register(ctx context.Context, reg models.Registration) (result models.AuthResult, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "AuthService.register")
	span.SetAttributes(attribute.String("auth.role", reg.Role.String()))
	defer func() {
		observeAttempt("register", err)
		span.End()
	}()

	email := models.NormalizeEmail(reg.Email)

	// checked first so a taken email costs no bcrypt round
	existing, err := a.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.AuthResult{}, duplicateIdentity(existing)
	case !errors.Is(err, store.ErrUserNotFound):
		return models.AuthResult{}, serverFault(ctx, "*authService.register", err, "user search by email failed")
	}

	hash, err := a.hasher.Hash(reg.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResult{}, invalidData(err)
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.register", err, "password hashing failed")
	}

	user, profile, err := a.users.CreateUserWithProfile(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         reg.Role,
		IsActive:     true,
	}, reg.Profile)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// lost a concurrent registration of the same email
		return models.AuthResult{}, a.duplicateByEmail(ctx, email)
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.register", err, "user creation ended with error")
	}

	tok, err := a.codec.Mint(user.UserID, user.Role, a.tokenDuration)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.register", err, "token minting failed")
	}

	publish(ctx, a.publisher, models.AuthEvent{
		Type:   models.AuthEventUserRegistered,
		UserID: user.UserID,
		Role:   user.Role,
		Method: models.AuthMethodPassword,
	})
	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("user registered")

	return models.AuthResult{Token: tok, User: user, Profile: profile}, nil
}

// Login checks an email/password pair. Every credential failure returns
// the same [ErrInvalidCredentials] and costs one bcrypt comparison.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (result models.AuthResult, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "AuthService.Login")
	defer func() {
		observeAttempt(models.AuthMethodPassword, err)
		span.End()
	}()

	if err = a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, invalidData(err)
	}

	user, err := a.users.FindUserByEmail(ctx, models.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.CompareDummy(req.Password)
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.Login", err, "user search by email failed")
	}

	if !user.HasPassword() {
		a.hasher.CompareDummy(req.Password)
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrMismatchedPassword) {
			logger.FromContext(ctx).Debug().Int64("user_id", user.UserID).Msg("wrong password")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		return models.AuthResult{}, serverFault(ctx, "*authService.Login", err, "stored password hash is unusable")
	}

	if !user.IsActive {
		return models.AuthResult{}, ErrUserInactive
	}

	profile, err := a.profiles.FindProfile(ctx, user.Role.ProfileKind(), user.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.AuthResult{}, ErrProfileMissing
	}
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.Login", err, "profile lookup failed")
	}

	tok, err := a.codec.Mint(user.UserID, user.Role, a.tokenDuration)
	if err != nil {
		return models.AuthResult{}, serverFault(ctx, "*authService.Login", err, "token minting failed")
	}

	publish(ctx, a.publisher, models.AuthEvent{
		Type:   models.AuthEventUserSignedIn,
		UserID: user.UserID,
		Role:   user.Role,
		Method: models.AuthMethodPassword,
	})

	return models.AuthResult{Token: tok, User: user, Profile: profile}, nil
}

func (a *authService) CompleteCandidateProfile(ctx context.Context, principal models.Principal, req models.CandidateProfileRequest) (models.UserView, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserView{}, invalidData(err)
	}
	if principal.User.Role != models.RoleCandidate {
		return models.UserView{}, ErrRoleMismatch
	}

	return a.updateProfile(ctx, principal.User, models.CandidateProfile{
		UserID:    principal.User.UserID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		BirthDate: req.BirthDate,
	})
}

func (a *authService) CompleteRecruiterProfile(ctx context.Context, principal models.Principal, req models.RecruiterProfileRequest) (models.UserView, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserView{}, invalidData(err)
	}
	if principal.User.Role != models.RoleRecruiter {
		return models.UserView{}, ErrRoleMismatch
	}

	return a.updateProfile(ctx, principal.User, models.RecruiterProfile{
		UserID:      principal.User.UserID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Sector:      strings.TrimSpace(req.Sector),
	})
}

func (a *authService) updateProfile(ctx context.Context, user models.User, profile models.Profile) (models.UserView, error) {
	updated, err := a.profiles.UpdateProfile(ctx, profile)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.UserView{}, ErrProfileMissing
	}
	if err != nil {
		return models.UserView{}, serverFault(ctx, "*authService.updateProfile", err, "profile update failed")
	}
	return models.NewUserView(user, updated), nil
}

func (a *authService) duplicateByEmail(ctx context.Context, email string) error {
	existing, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		return ErrDuplicateIdentity
	}
	return duplicateIdentity(existing)
}

// duplicateIdentity tells Google-only accounts apart so the client can
// offer Google sign-in instead.
func duplicateIdentity(existing models.User) error {
	if !existing.HasPassword() && existing.HasExternalIdentity() {
		return ErrDuplicateExternalIdentity
	}
	return ErrDuplicateIdentity
}
