package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-job-board/internal/adapter"
	"github.com/MKhiriev/go-job-board/internal/client"
	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("job-board-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("job-board-client", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	push, err := adapter.NewWebsocketPushChannel(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create push channel")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, push, *cfg, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		localStorage.Close()
		os.Exit(1)
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
