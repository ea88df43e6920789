// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ProfileKind names a role-specific profile table.
type ProfileKind string

const (
	ProfileKindNone      ProfileKind = ""
	ProfileKindAdmin     ProfileKind = "admin"
	ProfileKindRecruiter ProfileKind = "recruiter"
	ProfileKindCandidate ProfileKind = "candidate"
)

// Profile is the sealed set of role profiles. Each variant belongs to
// exactly one [User] and carries no credential data. Implementations live
// only in this package.
type Profile interface {
	// Kind returns the profile variant.
	Kind() ProfileKind
	// OwnerID returns the id of the owning user.
	OwnerID() int64

	isProfile()
}

// AdminProfile is the profile of admin and superadmin users.
type AdminProfile struct {
	UserID    int64     `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RecruiterProfile is the profile of recruiter users.
type RecruiterProfile struct {
	UserID      int64     `json:"-"`
	CompanyName string    `json:"companyName"`
	Sector      string    `json:"sector"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// CandidateProfile is the profile of candidate users.
type CandidateProfile struct {
	UserID    int64     `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate Date      `json:"birthDate"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p AdminProfile) Kind() ProfileKind     { return ProfileKindAdmin }
func (p RecruiterProfile) Kind() ProfileKind { return ProfileKindRecruiter }
func (p CandidateProfile) Kind() ProfileKind { return ProfileKindCandidate }

func (p AdminProfile) OwnerID() int64     { return p.UserID }
func (p RecruiterProfile) OwnerID() int64 { return p.UserID }
func (p CandidateProfile) OwnerID() int64 { return p.UserID }

func (AdminProfile) isProfile()     {}
func (RecruiterProfile) isProfile() {}
func (CandidateProfile) isProfile() {}

// NewEmptyProfile returns the zero profile of the variant owned by role,
// bound to userID. It returns nil for invalid roles.
func NewEmptyProfile(role Role, userID int64) Profile {
	switch role.ProfileKind() {
	case ProfileKindAdmin:
		return AdminProfile{UserID: userID}
	case ProfileKindRecruiter:
		return RecruiterProfile{UserID: userID}
	case ProfileKindCandidate:
		return CandidateProfile{UserID: userID}
	}
	return nil
}

// WithOwner returns a copy of p bound to userID.
func WithOwner(p Profile, userID int64) Profile {
	switch v := p.(type) {
	case AdminProfile:
		v.UserID = userID
		return v
	case RecruiterProfile:
		v.UserID = userID
		return v
	case CandidateProfile:
		v.UserID = userID
		return v
	}
	return p
}

// DateLayout is the wire and storage format of [Date].
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero value is stored as
// NULL and encoded as JSON null.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date must match %s: %w", DateLayout, err)
	}
	*d = Date{t}
	return nil
}

// Scan implements [sql.Scanner].
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v)
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return err
		}
		*d = Date{t}
	default:
		return fmt.Errorf("unsupported date source %T", src)
	}
	return nil
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
