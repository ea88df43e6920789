package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, build.Response(), http.StatusOK)
}
