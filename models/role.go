// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownRole is returned by [ParseRole] for strings outside the closed
// role set.
var ErrUnknownRole = errors.New("unknown role")

// Role is the coarse authorization class of a [User]. The set is closed:
// only the constants below are valid, and every role maps to exactly one
// [ProfileKind].
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleRecruiter  Role = "recruiter"
	RoleCandidate  Role = "candidate"
)

// AllRoles lists every valid role in a stable order.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleRecruiter, RoleCandidate}
}

// ParseRole converts a raw role string (case-insensitive) into a [Role].
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !role.IsValid() {
		return "", ErrUnknownRole
	}
	return role, nil
}

// IsValid reports whether r belongs to the closed role set.
func (r Role) IsValid() bool {
	return r.ProfileKind() != ProfileKindNone
}

// ProfileKind returns the profile variant owned by users of role r.
// Superadmins own an admin profile.
func (r Role) ProfileKind() ProfileKind {
	switch r {
	case RoleSuperAdmin, RoleAdmin:
		return ProfileKindAdmin
	case RoleRecruiter:
		return ProfileKindRecruiter
	case RoleCandidate:
		return ProfileKindCandidate
	}
	return ProfileKindNone
}

func (r Role) String() string {
	return string(r)
}

// RoleSet is an immutable-by-convention set of roles used as the capability
// argument of route guards.
type RoleSet map[Role]struct{}

// NewRoleSet builds a [RoleSet] from the given roles. Invalid roles are
// ignored.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		if role.IsValid() {
			set[role] = struct{}{}
		}
	}
	return set
}

// AnyRole is the set containing every valid role.
func AnyRole() RoleSet {
	return NewRoleSet(AllRoles()...)
}

// Contains reports whether role is a member of s.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s[role]
	return ok
}

// Roles returns the members of s in the order of [AllRoles].
func (s RoleSet) Roles() []Role {
	roles := make([]Role, 0, len(s))
	for _, role := range AllRoles() {
		if s.Contains(role) {
			roles = append(roles, role)
		}
	}
	return roles
}
