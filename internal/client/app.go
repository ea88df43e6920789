package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/tui"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	controller service.ClientSessionController
	ui         UI
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionController == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}
	return &App{controller: services.SessionController, ui: ui, logger: logger}, nil
}

// Run restores the saved session, runs the UI until the user quits or ctx
// is done and stops the background session tasks. The session itself is
// kept for the next start.
func (a *App) Run(ctx context.Context) error {
	if err := a.controller.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer a.controller.Close()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	return err
}
