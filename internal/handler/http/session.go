package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
)

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	if err := h.services.SessionService.Logout(r.Context(), principal); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// refresh is public: the presented token may already be expired, within the
// refresh grace.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.SessionService.Refresh(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result.View(), http.StatusOK)
}

func (h *Handler) suspendUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetPrincipalFromContext(r.Context())

	userID, req, err := adminTarget(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SessionService.SuspendUser(r.Context(), actor, userID, req.Reason); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) forceLogoutUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetPrincipalFromContext(r.Context())

	userID, req, err := adminTarget(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SessionService.ForceLogoutUser(r.Context(), actor, userID, req.Reason); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetPrincipalFromContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SessionService.DeleteUser(r.Context(), actor, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func adminTarget(w http.ResponseWriter, r *http.Request) (int64, models.RevokeRequest, error) {
	var req models.RevokeRequest

	userID, err := userIDParam(r)
	if err != nil {
		return 0, req, err
	}
	if err = decodeOptionalJSON(w, r, &req); err != nil {
		return 0, req, err
	}
	return userID, req, nil
}
