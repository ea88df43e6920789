// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/adapter"
	"github.com/MKhiriev/go-job-board/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The result still wraps the [adapter.StatusError], so
// adapter.Message returns the server text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		if errors.Is(err, adapter.ErrUnreachable) {
			return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
		}
		return err
	}

	return fmt.Errorf("%w: %w", sentinelFromStatus(statusErr), err)
}

func sentinelFromStatus(err *adapter.StatusError) error {
	msg := err.Message

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidData

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgAudienceMismatch:
			return ErrAudienceMismatch
		case app.MsgTokenRequired:
			return ErrNoToken
		case app.MsgTokenIsExpired:
			return ErrTokenExpired
		case app.MsgTokenRevoked:
			return ErrTokenRevoked
		}
		return ErrTokenInvalid

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgEmailNotVerified:
			return ErrUnverifiedIdentity
		case app.MsgAccountInactive:
			return ErrUserInactive
		case app.MsgUserNotFound:
			return ErrUserMissing
		case app.MsgProfileNotFound:
			return ErrProfileMissing
		}
		return ErrRoleMismatch

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownIdentity {
			return ErrUnknownIdentity
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailRegisteredWithGoogle:
			return ErrDuplicateExternalIdentity
		case app.MsgIdentityConflict:
			return ErrIdentityConflict
		}
		return ErrDuplicateIdentity

	case errors.Is(err, adapter.ErrBadGateway):
		return ErrUpstreamUnavailable
	}

	return ErrServerFault
}

// endsSession reports whether err means the current session can no longer
// be used: the token is rejected or the account is gone or suspended. A
// role mismatch only rejects the one call.
func endsSession(err error) bool {
	if errors.Is(err, ErrUnauthenticated) {
		return true
	}
	return errors.Is(err, ErrUserMissing) || errors.Is(err, ErrUserInactive) || errors.Is(err, ErrProfileMissing)
}
