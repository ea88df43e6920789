package http

import (
	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withTracing)
	router.Use(h.withTraceID)
	router.Use(withMetrics)
	router.Use(withLogging)

	admins := models.NewRoleSet(models.RoleAdmin, models.RoleSuperAdmin)

	// service endpoints
	router.Get("/version", h.getServerVersion)
	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", promhttp.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/login", h.login)
		r.Post("/user/auth/google-signin", h.googleSignIn)
		r.Post("/candidate/register", h.registerCandidate)
		r.Post("/candidate/auth/google-signin", h.googleSignInCandidate)
		r.Post("/recruiter/register", h.registerRecruiter)
		r.Post("/auth/refresh", h.refresh)

		// answers rejections itself with {"valid": false}
		r.Get("/user/verify-token", h.verifyToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.AnyRole()))
		r.Post("/auth/logout", h.logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.NewRoleSet(models.RoleCandidate)))
		r.Post("/candidate/register/step2", h.completeCandidateProfile)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.NewRoleSet(models.RoleRecruiter)))
		r.Post("/recruiter/register/step2", h.completeRecruiterProfile)
	})

	router.Route("/admin/users/{id}", func(r chi.Router) {
		r.Use(h.authorize(admins))
		r.Post("/suspend", h.suspendUser)
		r.Post("/logout", h.forceLogoutUser)
		r.Delete("/", h.deleteUser)
	})

	if h.push != nil {
		router.Get("/ws", h.serveWS)
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
