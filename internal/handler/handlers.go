package handler

import (
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/handler/grpc"
	"github.com/MKhiriev/go-job-board/internal/handler/http"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// Dependencies are the transport collaborators that are not services.
// Push and Health may be nil.
type Dependencies struct {
	Push           http.PushServer
	Health         http.HealthChecker
	HealthInterval time.Duration
}

func NewHandlers(services *service.Services, deps Dependencies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, deps.Push, deps.Health, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, deps.Health, deps.HealthInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransports
	}

	return handlers, nil
}
