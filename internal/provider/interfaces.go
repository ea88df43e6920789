// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider introspects access tokens of external identity
// providers. Google is the only implementation.
package provider

import (
	"context"

	"github.com/MKhiriev/go-job-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider resolves a provider access token into verified identity
// claims. Policy checks (audience, verified email) are left to the caller.
type IdentityProvider interface {
	Introspect(ctx context.Context, accessToken string) (models.ExternalIdentity, error)
}
