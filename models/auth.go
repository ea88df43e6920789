// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// CandidateRegistrationRequest is the body of POST /candidate/register.
// The candidate profile is created together with the user; names and birth
// date may be completed later through the second registration step.
type CandidateRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,maxbytes=72"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	BirthDate Date   `json:"birthDate"`
}

// CandidateProfileRequest is the body of POST /candidate/register/step2.
type CandidateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	BirthDate Date   `json:"birthDate"`
}

// RecruiterRegistrationRequest is the body of POST /recruiter/register.
type RecruiterRegistrationRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,min=8,maxbytes=72"`
	CompanyName string `json:"companyName" validate:"max=200"`
	Sector      string `json:"sector" validate:"max=100"`
}

// RecruiterProfileRequest is the body of POST /recruiter/register/step2.
type RecruiterProfileRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Sector      string `json:"sector" validate:"required,max=100"`
}

// GoogleSignInRequest is the body of both Google sign-in routes.
type GoogleSignInRequest struct {
	GoogleAccessToken string `json:"googleAccessToken" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// RevokeRequest is the optional body of admin session revocation routes.
type RevokeRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// Registration is the service-level input of password registration: the
// credential pair plus the role profile to create with the user.
type Registration struct {
	Email    string
	Password string
	Role     Role
	Profile  Profile
}

// AuthResult is what every credential issuer returns on success.
type AuthResult struct {
	Token   Token
	User    User
	Profile Profile
}

// View returns the client-facing projection of r.
func (r AuthResult) View() AuthResponse {
	return AuthResponse{
		Token: r.Token.SignedString,
		User:  NewUserView(r.User, r.Profile),
	}
}
