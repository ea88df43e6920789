// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Auth domain event types published to the message broker.
const (
	AuthEventUserRegistered = "user.registered"
	AuthEventUserSignedIn   = "user.signed_in"
	AuthEventIdentityLinked = "identity.linked"
	AuthEventSessionRevoked = "session.revoked"
	AuthEventUserSuspended  = "user.suspended"
	AuthEventUserDeleted    = "user.deleted"
)

// AuthEvent is an audit/integration event emitted by the auth services.
type AuthEvent struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Role       Role      `json:"role,omitempty"`
	Method     string    `json:"method,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sign-in methods recorded on [AuthEvent].
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
	AuthMethodRefresh  = "refresh"
)
