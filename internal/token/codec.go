// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token mints and verifies the HS256 session tokens shared by every
// credential issuer. It performs no I/O: revocation and user lookups happen
// in the service layer.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-job-board/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Codec signs and verifies session tokens with one symmetric key.
type Codec struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// Option configures a [Codec].
type Option func(*Codec)

// WithClock replaces the wall clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec returns a codec signing with signKey and stamping issuer.
func NewCodec(signKey, issuer string, opts ...Option) (*Codec, error) {
	if signKey == "" || issuer == "" {
		return nil, ErrInvalidParams
	}

	c := &Codec{
		key:    []byte(signKey),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Mint issues a token for subjectID valid for ttl from now.
func (c *Codec) Mint(subjectID int64, role models.Role, ttl time.Duration) (models.Token, error) {
	if subjectID <= 0 || ttl <= 0 || !role.IsValid() {
		return models.Token{}, ErrInvalidParams
	}

	jti, err := uuid.NewV7()
	if err != nil {
		return models.Token{}, fmt.Errorf("error generating token id: %w", err)
	}

	// NumericDate has second precision; exp is derived from the whole
	// second so the returned Token matches what Verify will later decode.
	issuedAt := c.now().Truncate(time.Millisecond).UTC()
	issuedSecond := issuedAt.Truncate(time.Second)
	claims := models.Claims{
		Role:          role,
		IssuedAtMilli: issuedAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedSecond),
			ExpiresAt: jwt.NewNumericDate(issuedSecond.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		ID:           claims.ID,
		SubjectID:    subjectID,
		Role:         role,
		IssuedAt:     issuedAt,
		ExpiresAt:    issuedSecond.Add(ttl),
	}, nil
}

// Verify checks signature, algorithm, issuer and expiry of raw. A token is
// rejected with [ErrExpired] from the exact expiry instant on.
func (c *Codec) Verify(raw string) (models.Token, error) {
	return c.verify(raw, 0)
}

// VerifyWithGrace is Verify that still accepts tokens expired no longer than
// grace ago.
func (c *Codec) VerifyWithGrace(raw string, grace time.Duration) (models.Token, error) {
	if grace < 0 {
		grace = 0
	}
	return c.verify(raw, grace)
}

func (c *Codec) verify(raw string, grace time.Duration) (models.Token, error) {
	if raw == "" {
		return models.Token{}, ErrMalformed
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(grace),
		jwt.WithTimeFunc(c.now),
	)

	claims := &models.Claims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return models.Token{}, classify(err)
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subjectID <= 0 {
		return models.Token{}, fmt.Errorf("%w: bad subject", ErrMalformed)
	}
	if !claims.Role.IsValid() {
		return models.Token{}, fmt.Errorf("%w: bad role", ErrMalformed)
	}
	if claims.ID == "" {
		return models.Token{}, fmt.Errorf("%w: missing token id", ErrMalformed)
	}

	issuedAt, err := issuedAtOf(claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		SignedString: raw,
		ID:           claims.ID,
		SubjectID:    subjectID,
		Role:         claims.Role,
		IssuedAt:     issuedAt,
		ExpiresAt:    claims.ExpiresAt.UTC(),
	}, nil
}

// issuedAtOf prefers the millisecond issue time, which must fall within the
// iat second. Tokens without it keep the whole-second iat.
func issuedAtOf(claims *models.Claims) (time.Time, error) {
	if claims.IssuedAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing iat", ErrMalformed)
	}
	iat := claims.IssuedAt.UTC()
	if claims.IssuedAtMilli == 0 {
		return iat, nil
	}

	precise := time.UnixMilli(claims.IssuedAtMilli).UTC()
	if !precise.Truncate(time.Second).Equal(iat) {
		return time.Time{}, fmt.Errorf("%w: iat_ms does not match iat", ErrMalformed)
	}
	return precise, nil
}

// classify maps jwt parser errors onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
