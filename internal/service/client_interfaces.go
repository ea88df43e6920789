package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-job-board/models"
)

// ClientSessionStore holds the client-side session state. It is the single
// owner of the token: it persists it, mirrors it into the server adapter and
// publishes every change to its subscribers.
//
// Methods taking a generation only apply when the session generation is
// still the one the caller observed, so background work started for an old
// session cannot touch a newer one.
type ClientSessionStore interface {
	// State returns a snapshot of the current session.
	State() models.ClientSessionState

	// Restore loads the persisted session, if any, and makes it current.
	Restore(ctx context.Context) (models.ClientSessionState, error)

	// SetCredentials persists user and token, sets the adapter token, marks
	// the session authenticated and returns the new generation.
	SetCredentials(ctx context.Context, user models.UserView, token string) (uint64, error)

	// ReplaceToken applies a refreshed token. It reports false when the
	// generation has changed.
	ReplaceToken(ctx context.Context, generation uint64, token string, user models.UserView) (bool, error)

	// UpdateUser replaces the stored user view. It reports false when the
	// generation has changed.
	UpdateUser(ctx context.Context, generation uint64, user models.UserView) (bool, error)

	// Logout clears the state, the persisted copy and the adapter token.
	// Calling it on an empty session is a no-op.
	Logout(ctx context.Context) error

	// ForceLogout is Logout that records reason for the login screen. An
	// empty reason becomes [models.DefaultForcedLogoutReason].
	ForceLogout(ctx context.Context, reason string) error

	// ForceLogoutIfCurrent is ForceLogout guarded by generation.
	ForceLogoutIfCurrent(ctx context.Context, generation uint64, reason string) (bool, error)

	// SetLoading marks a credential request as in flight and clears the
	// last error.
	SetLoading(loading bool)

	// SetError records a user-visible failure and ends loading.
	SetError(message string)

	// SetConnected records the push channel state for generation.
	SetConnected(generation uint64, connected bool) bool

	// Subscribe returns a channel that always yields the latest state and a
	// function that ends the subscription and closes the channel.
	Subscribe() (<-chan models.ClientSessionState, func())
}

// ClientSessionController drives the session lifecycle of the terminal
// client: credential calls, the push channel, periodic verification and
// logout.
type ClientSessionController interface {
	// Start restores a persisted session. When one exists it connects the
	// push channel and verifies the token right away. ctx bounds every
	// background task of the controller.
	Start(ctx context.Context) error

	Login(ctx context.Context, req models.LoginRequest) error
	RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) error
	RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) error
	GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) error
	GoogleSignInCandidate(ctx context.Context, req models.GoogleSignInRequest) error

	// CompleteCandidateProfile and CompleteRecruiterProfile run the second
	// registration step for the signed-in user.
	CompleteCandidateProfile(ctx context.Context, req models.CandidateProfileRequest) error
	CompleteRecruiterProfile(ctx context.Context, req models.RecruiterProfileRequest) error

	// Verify checks the current token with the server. Rejections end the
	// session; transport failures do not.
	Verify(ctx context.Context) error

	// Logout revokes the token on the server when it can and always clears
	// the local session.
	Logout(ctx context.Context) error

	// ForcedLogouts yields the reason of every logout the user did not ask
	// for.
	ForcedLogouts() <-chan string

	// ServerVersion returns the server build information.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)

	// Close stops the background tasks. The session is kept.
	Close()
}
