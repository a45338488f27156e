// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/tui"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// App owns the client process lifecycle: it runs the UI until the user
// quits or the process receives SIGINT/SIGTERM.
type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is nil")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run implements [Client]. Quitting with Ctrl+C is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		a.logger.Err(err).Msg("ui failed")
		return fmt.Errorf("run ui: %w", err)
	}
}
