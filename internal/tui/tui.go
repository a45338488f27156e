// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client on bubbletea: a menu with login
// and signup forms, a dashboard with the tool catalogue and the trial state,
// and the card form that starts a trial.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services     *service.ClientServices
	buildInfo    models.AppBuildInfo
	pollInterval time.Duration
	logger       *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, pollInterval time.Duration, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, pollInterval: pollInterval, logger: logger}, nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, t.services.SessionService),
		pageSignup:    NewSignupModel(ctx, t.services.SessionService),
		pageDashboard: NewDashboardModel(ctx, t.services.SessionService, t.services.DashboardService),
		pageTrial:     NewTrialModel(ctx, t.services.SessionService),
	}
}

// Run shows the program until the user quits. While it runs the status job
// feeds session snapshots into the dashboard. Ctrl+C yields [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.StatusJob.Start(ctx, t.pollInterval, func(update service.StatusUpdate) {
		program.Send(statusUpdateMsg(update))
	})
	defer t.services.StatusJob.Stop()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.QuitByUser() {
		t.logger.Info().Msg("client closed by user")
		return ErrUserQuit
	}
	return nil
}
