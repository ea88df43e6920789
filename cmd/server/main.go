package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/handler"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/provider"
	"github.com/MKhiriev/go-job-board/internal/push"
	"github.com/MKhiriev/go-job-board/internal/server"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/token"
	"github.com/MKhiriev/go-job-board/internal/tracing"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/internal/workers"
	"github.com/MKhiriev/go-job-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("job-board-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("job-board-server", cfg.App.LogLevel)
	ctx := context.Background()

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Telemetry, build.BuildVersion())
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	codec, err := token.NewCodec(cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	publisher := events.NewPublisher(cfg.Broker, log)
	defer publisher.Close()

	hub := push.NewHub(log)

	services, err := service.NewServices(storages, service.Dependencies{
		Codec:     codec,
		Hasher:    hasher,
		Validator: validators.NewRequestValidator(),
		Provider:  provider.NewGoogleProvider(cfg.Google, provider.DefaultBreakerSettings(), log),
		Publisher: publisher,
		Notifier:  hub,
		Build:     build,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, handler.Dependencies{
		Push:           hub,
		Health:         storages,
		HealthInterval: cfg.Workers.HealthCheckInterval,
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := []workers.Worker{hub}
	if storages.MemoryRevocation != nil {
		background = append(background, storages.MemoryRevocation)
	}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(log, background...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
