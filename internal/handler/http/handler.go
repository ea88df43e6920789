package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
)

// PushServer attaches an authorized request to the push channel.
type PushServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, principal models.Principal) error
}

// HealthChecker reports whether the backing stores are reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	push     PushServer
	health   HealthChecker

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. push and health may be nil: without
// push the /ws route is not registered, without health /healthz always
// answers 200.
func NewHandler(services *service.Services, push PushServer, health HealthChecker, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		push:     push,
		health:   health,
		logger:   logger,
	}
}
