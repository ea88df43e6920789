package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the password credential issuer plus the second
// registration step.
type AuthService interface {
	RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) (models.AuthResult, error)
	RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// CompleteCandidateProfile and CompleteRecruiterProfile update the
	// profile owned by the authorized principal.
	CompleteCandidateProfile(ctx context.Context, principal models.Principal, req models.CandidateProfileRequest) (models.UserView, error)
	CompleteRecruiterProfile(ctx context.Context, principal models.Principal, req models.RecruiterProfileRequest) (models.UserView, error)
}

// GoogleSignInService is the external identity credential issuer.
type GoogleSignInService interface {
	// SignIn only signs in accounts that already exist.
	SignIn(ctx context.Context, accessToken string) (models.AuthResult, error)
	// SignInCandidate also creates a candidate account for a new identity.
	SignInCandidate(ctx context.Context, accessToken string) (models.AuthResult, error)
}

// AuthorizationService decides whether a presented token may access a
// resource restricted to a set of roles.
type AuthorizationService interface {
	Authorize(ctx context.Context, rawToken string, allowed models.RoleSet) (models.Principal, error)
}

// SessionService revokes and renews sessions.
type SessionService interface {
	// Logout revokes the token of principal.
	Logout(ctx context.Context, principal models.Principal) error
	// Refresh trades a valid or recently expired token for a new one and
	// revokes the old token.
	Refresh(ctx context.Context, rawToken string) (models.AuthResult, error)

	SuspendUser(ctx context.Context, actor models.Principal, userID int64, reason string) error
	ForceLogoutUser(ctx context.Context, actor models.Principal, userID int64, reason string) error
	DeleteUser(ctx context.Context, actor models.Principal, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// TokenCodec mints and verifies session tokens.
type TokenCodec interface {
	Mint(subjectID int64, role models.Role, ttl time.Duration) (models.Token, error)
	Verify(raw string) (models.Token, error)
	VerifyWithGrace(raw string, grace time.Duration) (models.Token, error)
}

// SessionNotifier pushes session invalidation to connected clients.
type SessionNotifier interface {
	// NotifyUser sends event to every connection of userID and closes them
	// when the event invalidates the session.
	NotifyUser(ctx context.Context, userID int64, event models.PushEvent)
	// DisconnectToken closes connections authenticated with the token jti.
	DisconnectToken(ctx context.Context, jti string)
}
