package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusOK)
}

func (h *Handler) registerCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CandidateRegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.RegisterCandidate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusCreated)
}

func (h *Handler) registerRecruiter(w http.ResponseWriter, r *http.Request) {
	var req models.RecruiterRegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.RegisterRecruiter(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusCreated)
}

// completeCandidateProfile is the second registration step; the route guard
// has already put the candidate principal into the context.
func (h *Handler) completeCandidateProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	var req models.CandidateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.AuthService.CompleteCandidateProfile(r.Context(), principal, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: view}, http.StatusOK)
}

func (h *Handler) completeRecruiterProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	var req models.RecruiterProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.AuthService.CompleteRecruiterProfile(r.Context(), principal, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: view}, http.StatusOK)
}

func (h *Handler) googleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleSignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.GoogleSignInService.SignIn(r.Context(), req.GoogleAccessToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusOK)
}

func (h *Handler) googleSignInCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleSignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.GoogleSignInService.SignInCandidate(r.Context(), req.GoogleAccessToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusOK)
}

// verifyToken runs the same authorization as the route guard but answers
// rejections with {"valid": false, "error": ...} instead of the plain error
// body.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	principal, err := h.authorizeRequest(r, models.AnyRole(), false)
	if err != nil {
		status := statusFromError(err)
		logRejection(r, err, status)
		utils.WriteJSON(w, models.VerifyTokenResponse{Valid: false, Error: messageFromError(err)}, status)
		return
	}

	view := models.NewUserView(principal.User, principal.Profile)
	utils.WriteJSON(w, models.VerifyTokenResponse{Valid: true, User: &view}, http.StatusOK)
}
