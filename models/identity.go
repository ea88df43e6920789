// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderGoogle is the only supported external identity provider.
const ProviderGoogle = "google"

// ExternalIdentity holds the verified claims obtained by introspecting an
// external provider's access token.
type ExternalIdentity struct {
	Provider string

	// Subject is the provider's stable user id.
	Subject string

	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string

	// Audience is the client id the token was issued to.
	Audience string
	// AuthorizedParty is the client that requested the token (azp).
	AuthorizedParty string

	ExpiresAt time.Time
}
