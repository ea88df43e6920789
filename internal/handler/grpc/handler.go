// Package grpc is the gRPC transport of the auth server. It serves the
// standard grpc.health.v1 service, with the serving status kept in step
// with the reachability of the stores.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the auth API. The empty name
// reports the server as a whole.
const ServiceName = "jobboard.auth"

// HealthChecker reports whether the backing stores are reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and refreshes its status from checker on every
// tick of Run, so it doubles as a background worker.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health   *health.Server
	checker  HealthChecker
	interval time.Duration

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil checker reports SERVING until
// shutdown.
func NewHandler(services *service.Services, checker HealthChecker, interval time.Duration, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

func (h *Handler) Name() string {
	return "grpc-health"
}

// Run polls the checker every interval until ctx is done, then marks every
// service NOT_SERVING.
func (h *Handler) Run(ctx context.Context) error {
	h.check(ctx)

	if h.interval <= 0 {
		<-ctx.Done()
		h.health.Shutdown()
		return nil
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *Handler) check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if h.checker != nil {
		pingCtx, cancel := context.WithTimeout(ctx, h.interval/2+time.Second)
		err := h.checker.Ping(pingCtx)
		cancel()
		if err != nil {
			h.logger.Warn().Err(err).Msg("stores unreachable, reporting NOT_SERVING")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
