// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by login, registration, Google sign-in and
// refresh.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// ProfileResponse is returned by the registration second step.
type ProfileResponse struct {
	User UserView `json:"user"`
}

// VerifyTokenResponse is returned by GET /user/verify-token, on success and
// on rejection.
type VerifyTokenResponse struct {
	Valid bool      `json:"valid"`
	User  *UserView `json:"user,omitempty"`
	Error string    `json:"error,omitempty"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
