// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultForcedLogoutReason is shown when the server does not supply one.
const DefaultForcedLogoutReason = "Session expired"

// ClientSessionState is the client-side view of the current session.
type ClientSessionState struct {
	User  *UserView
	Token string

	// Loading is set while a credential request is in flight.
	Loading bool

	// Error holds the last user-visible failure or forced-logout reason.
	Error string

	// Connected reports whether the push channel is up.
	Connected bool

	// Generation increases on every credential change and logout. Background
	// work captures it and only mutates the session if it is unchanged.
	Generation uint64
}

// IsAuthenticated is derived: a token and a user are both present.
func (s ClientSessionState) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// LocalSession is the durable client copy of the session.
type LocalSession struct {
	Token string
	User  *UserView
}
