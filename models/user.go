// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User is the credential record of an account. It holds a password hash,
// a Google subject id, or both; never neither. Sensitive fields never leave
// the server: use [NewUserView] to build the client-facing projection.
type User struct {
	// UserID is the primary key.
	UserID int64 `json:"id"`

	// Email is unique and stored normalized (see [NormalizeEmail]).
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash, empty for Google-only accounts.
	PasswordHash string `json:"-"`

	// GoogleID is the bound Google subject id, nil until first Google
	// sign-in for password accounts.
	GoogleID *string `json:"-"`

	// Role is fixed at creation.
	Role Role `json:"role"`

	IsActive        bool `json:"isActive"`
	IsEmailVerified bool `json:"isEmailVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can log in with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// ExternalID returns the bound Google subject id or "".
func (u User) ExternalID() string {
	if u.GoogleID == nil {
		return ""
	}
	return *u.GoogleID
}

// HasExternalIdentity reports whether a Google subject id is bound.
func (u User) HasExternalIdentity() bool {
	return u.ExternalID() != ""
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserView is the sanitized user projection returned to clients and stored
// by the client session. Profile fields are filled from the role profile.
type UserView struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	IsEmailVerified bool   `json:"isEmailVerified"`

	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	BirthDate   *Date  `json:"birthDate,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Sector      string `json:"sector,omitempty"`
}

// NewUserView merges user and its profile (which may be nil) into a
// [UserView].
func NewUserView(user User, profile Profile) UserView {
	view := UserView{
		ID:              user.UserID,
		Email:           user.Email,
		Role:            user.Role,
		IsEmailVerified: user.IsEmailVerified,
	}

	switch p := profile.(type) {
	case AdminProfile:
		view.FirstName, view.LastName = p.FirstName, p.LastName
	case RecruiterProfile:
		view.CompanyName, view.Sector = p.CompanyName, p.Sector
	case CandidateProfile:
		view.FirstName, view.LastName = p.FirstName, p.LastName
		if !p.BirthDate.IsZero() {
			birthDate := p.BirthDate
			view.BirthDate = &birthDate
		}
	}

	return view
}

// DisplayName returns a human readable label for UI output.
func (v UserView) DisplayName() string {
	name := strings.TrimSpace(v.FirstName + " " + v.LastName)
	if name == "" {
		name = v.CompanyName
	}
	if name == "" {
		return v.Email
	}
	return name
}
