package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when a user with the same
	// (normalized) email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrExternalIDAlreadyBound is returned when the Google subject id is
	// already bound to a user, or the target user already has one bound.
	ErrExternalIDAlreadyBound = errors.New("external id already bound")

	// ErrProfileNotFound is returned when the role profile row is missing.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrUnsupportedProfile is returned for a profile kind without a table.
	ErrUnsupportedProfile = errors.New("unsupported profile kind")

	// ErrLocalSessionNotFound is returned when the client has no persisted
	// session.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level step fails before any domain logic applies.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
)
