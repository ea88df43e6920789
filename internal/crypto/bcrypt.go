// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinCost is the lowest accepted bcrypt cost.
	MinCost = 10
	// DefaultCost is used when no cost is configured.
	DefaultCost = 12
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var (
	ErrMismatchedPassword = errors.New("password does not match")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrInvalidCost        = errors.New("invalid bcrypt cost")
)

type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher returns a [PasswordHasher] using bcrypt at cost. A zero cost
// selects [DefaultCost]; costs below [MinCost] or above bcrypt.MaxCost are
// rejected.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy hash: %w", err)
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (b *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatchedPassword
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

func (b *bcryptHasher) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(b.dummyHash, []byte(password))
}
