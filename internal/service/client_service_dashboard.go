// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/adapter"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientDashboardService creates a [ClientDashboardService] over
// serverAdapter.
func NewClientDashboardService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter, logger: logger}
}

func (d *clientDashboardService) Tools(ctx context.Context) ([]models.ToolAccess, error) {
	tools, err := d.adapter.Tools(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return tools, nil
}

func (d *clientDashboardService) LaunchTool(ctx context.Context, name string) error {
	if err := d.adapter.LaunchTool(ctx, name); err != nil {
		d.logger.Err(err).Str("tool", name).Msg("launch failed")
		return fmt.Errorf("%w: %q", mapAdapterError(err), name)
	}
	return nil
}

func (d *clientDashboardService) Notifications(ctx context.Context, limit int) ([]models.Notification, error) {
	notifications, err := d.adapter.Notifications(ctx, limit)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return notifications, nil
}

func (d *clientDashboardService) ServerVersion(ctx context.Context) (string, error) {
	version, err := d.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
