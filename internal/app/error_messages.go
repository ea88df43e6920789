// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message table shared by the job-board auth
// server and its client.
//
// The server writes these strings into {"error": ...} response bodies and
// push event reasons; the client matches them to map a response back onto
// a service error. Keeping them in one place keeps both sides in step.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is the single answer to every failed password
	// login, whatever the cause.
	MsgInvalidCredentials = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgEmailAlreadyRegistered = "email is already registered"

	// MsgEmailRegisteredWithGoogle tells the client to switch to Google
	// sign-in: the account has no password.
	MsgEmailRegisteredWithGoogle = "email is already registered with Google, sign in with Google instead"

	MsgEmailNotVerified  = "Google account email is not verified"
	MsgAudienceMismatch  = "Google token was issued to a different application"
	MsgUnknownIdentity   = "no account found for this Google identity, register as a candidate first"
	MsgIdentityConflict  = "account is linked to a different Google identity"
	MsgGoogleUnavailable = "Google sign-in is temporarily unavailable"

	MsgTokenRequired  = "authorization token is required"
	MsgTokenIsExpired = "token is expired"
	// MsgTokenIsInvalid covers malformed tokens and bad signatures.
	MsgTokenIsInvalid = "token is invalid"
	MsgTokenRevoked   = "token has been revoked"

	// MsgRouteNotFound answers unknown paths and unsupported methods alike.
	MsgRouteNotFound = "route not found"

	MsgAccessDenied    = "access denied"
	MsgAccountInactive = "account is suspended"
	MsgUserNotFound    = "user not found"
	MsgProfileNotFound = "user profile not found"

	// Reasons carried by push events.
	MsgReasonSuspended = "Your account has been suspended"
	MsgReasonDeleted   = "Your account has been deleted"
	MsgReasonLoggedOut = "You have been signed out by an administrator"
)
