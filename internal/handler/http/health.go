package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-job-board/internal/utils"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			h.logger.Err(err).Msg("health check failed")
			utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
