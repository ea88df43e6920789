// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/app"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// An unsupported method on a known path is answered like an unknown path:
// 404 with the JSON error body, so the route table is not disclosed.
//
// Requests that do match a route (parameterised patterns included) are
// handed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		routeNotFound(w, r)
	}
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
