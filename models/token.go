// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set of a session token: the registered claims
// (sub, iss, iat, exp, jti) plus the subject's role.
//
// iat has whole-second precision; IssuedAtMilli carries the same instant in
// milliseconds so tokens can be ordered against per-user revocation cutoffs.
type Claims struct {
	Role          Role  `json:"role"`
	IssuedAtMilli int64 `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// Token is a minted or verified session token.
type Token struct {
	// SignedString is the compact JWS form sent as `Authorization: Bearer`.
	SignedString string `json:"-"`

	// ID is the unique token id (jti), the key of server-side revocation.
	ID string `json:"-"`

	// SubjectID is the user id from the "sub" claim.
	SubjectID int64 `json:"-"`

	// Role is the subject's role at mint time.
	Role Role `json:"-"`

	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact serialized token.
func (t Token) String() string {
	return t.SignedString
}

// RemainingTTL returns how long the token stays valid after now, or zero.
func (t Token) RemainingTTL(now time.Time) time.Duration {
	if remaining := t.ExpiresAt.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// Principal is the result of a successful authorization: the verified token,
// the live user record and its role profile. It is attached to the request
// context of protected routes.
type Principal struct {
	Token   Token
	User    User
	Profile Profile
}
