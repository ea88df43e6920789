// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// credential issuers.
//
// Structural rules live in `validate` struct tags on the models and are
// enforced with go-playground/validator. Rules that tags cannot express
// (bcrypt byte limit, dates relative to now) are applied per type by
// [RequestValidator].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
