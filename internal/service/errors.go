package service

import (
	"errors"
	"fmt"
)

// Every error returned by the auth services matches exactly one of the
// top-level sentinels below with errors.Is; the wrapped variants refine the
// message shown to clients.
var (
	ErrInvalidData        = errors.New("invalid data provided")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateIdentity         = errors.New("identity already registered")
	ErrDuplicateExternalIdentity = fmt.Errorf("%w: account was created with Google", ErrDuplicateIdentity)

	ErrUnverifiedIdentity = errors.New("external identity email is not verified")
	ErrAudienceMismatch   = errors.New("external token audience mismatch")
	ErrUnknownIdentity    = errors.New("unknown external identity")
	ErrIdentityConflict   = errors.New("external identity conflict")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoToken         = fmt.Errorf("%w: no token", ErrUnauthenticated)
	ErrTokenExpired    = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrTokenInvalid    = fmt.Errorf("%w: token invalid", ErrUnauthenticated)
	ErrTokenRevoked    = fmt.Errorf("%w: token revoked", ErrUnauthenticated)

	ErrForbidden      = errors.New("forbidden")
	ErrUserMissing    = fmt.Errorf("%w: user not found", ErrForbidden)
	ErrUserInactive   = fmt.Errorf("%w: user inactive", ErrForbidden)
	ErrRoleMismatch   = fmt.Errorf("%w: role not allowed", ErrForbidden)
	ErrProfileMissing = fmt.Errorf("%w: profile not found", ErrForbidden)

	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrServerFault = errors.New("internal server error")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors of the session controller.
var (
	// ErrServerUnreachable wraps transport failures; the session survives
	// them.
	ErrServerUnreachable = errors.New("server is unreachable")

	// ErrStaleSession is returned when a result belongs to a session that
	// has since been replaced or ended.
	ErrStaleSession = errors.New("session changed")
)
