// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the job board client.
//
// [RootModel] routes between pages and follows the client session: every
// session change and forced logout published by the service layer is fed
// into the Bubble Tea program as a message.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with Ctrl+C.
var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	controller service.ClientSessionController
	sessions   service.ClientSessionStore
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionController == nil || services.Session == nil {
		return nil, errors.New("tui: client services are not initialized")
	}
	return &TUI{
		controller: services.SessionController,
		sessions:   services.Session,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.sessions.Subscribe()
	defer unsubscribe()

	root := NewRootModel(ctx, t.controller, t.pages(ctx), t.sessions.State(), t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	done := make(chan struct{})
	defer close(done)
	go t.forward(program, updates, done)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:              NewMenuModel(),
		pageLogin:             NewLoginModel(ctx, t.controller),
		pageGoogle:            NewGoogleModel(ctx, t.controller),
		pageRegisterCandidate: NewRegisterModel(ctx, t.controller, models.RoleCandidate),
		pageRegisterRecruiter: NewRegisterModel(ctx, t.controller, models.RoleRecruiter),
		pageSession:           NewSessionModel(ctx, t.controller),
		pageProfile:           NewProfileModel(ctx, t.controller),
	}
}

// forward feeds session updates and forced logouts into program until done
// is closed.
func (t *TUI) forward(program *tea.Program, updates <-chan models.ClientSessionState, done <-chan struct{}) {
	forced := t.controller.ForcedLogouts()
	for {
		select {
		case <-done:
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			program.Send(sessionStateMsg{state: state})
		case reason := <-forced:
			t.logger.Info().Str("reason", reason).Msg("session ended by the server")
			program.Send(forcedLogoutMsg{reason: reason})
		}
	}
}
