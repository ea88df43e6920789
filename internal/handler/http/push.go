package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// serveWS authorizes the websocket handshake and hands the connection to
// the push hub. Browsers cannot set headers on a websocket handshake, so
// the token may also come from the "token" query parameter.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	principal, err := h.authorizeRequest(r, models.AnyRole(), true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.push.ServeWS(w, r, principal); err != nil {
		logger.FromRequest(r).Warn().Err(err).Int64("user_id", principal.User.UserID).Msg("push handshake failed")
	}
}
