// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the job-board auth server.
//
// [ServerAdapter] covers the REST routes and is implemented over resty
// ([NewHTTPServerAdapter]). [PushChannel] opens the websocket push channel
// ([NewWebsocketPushChannel]).
//
// Every non-2xx answer is returned as a [*StatusError] that unwraps to one
// of the transport classes in errors.go ([ErrUnauthorized] for 401,
// [ErrConflict] for 409, ...) and carries the server message, so the service
// layer can map it back onto its own sentinels. Failures to reach the server
// at all wrap [ErrUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the auth
// server. Credential calls return the issued token and user but do not
// store the token: the session store does that through SetToken.
type ServerAdapter interface {
	// SetToken sets the bearer token attached to every authenticated
	// request. An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently set, or "".
	Token() string

	// Login exchanges an email and password for a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// RegisterCandidate creates a candidate account and signs it in.
	RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) (models.AuthResponse, error)

	// RegisterRecruiter creates a recruiter account and signs it in.
	RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) (models.AuthResponse, error)

	// CompleteCandidateProfile is the second registration step of a
	// candidate. Requires a candidate token.
	CompleteCandidateProfile(ctx context.Context, req models.CandidateProfileRequest) (models.UserView, error)

	// CompleteRecruiterProfile is the second registration step of a
	// recruiter. Requires a recruiter token.
	CompleteRecruiterProfile(ctx context.Context, req models.RecruiterProfileRequest) (models.UserView, error)

	// GoogleSignIn signs in an existing account with a Google access token.
	GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error)

	// GoogleSignInCandidate signs in with Google, creating a candidate
	// account on first use.
	GoogleSignInCandidate(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error)

	// VerifyToken checks the current token and returns the fresh user view.
	VerifyToken(ctx context.Context) (models.UserView, error)

	// Refresh exchanges token for a new one; the old token is revoked.
	Refresh(ctx context.Context, token string) (models.AuthResponse, error)

	// Logout revokes the current token on the server.
	Logout(ctx context.Context) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}

// PushChannel opens the server push channel for a session token.
type PushChannel interface {
	// Connect performs the websocket handshake. A rejected handshake is
	// returned as a [*StatusError].
	Connect(ctx context.Context, token string) (PushStream, error)
}

// PushStream is one open push connection.
type PushStream interface {
	// Events yields server events in order. The channel is closed when the
	// connection ends for any reason.
	Events() <-chan models.PushEvent

	// Close ends the connection. It is safe to call more than once.
	Close() error
}
