// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pay-trial/internal/adapter"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

// ClientServices aggregates the services used by the terminal client.
type ClientServices struct {
	SessionService   ClientSessionService
	DashboardService ClientDashboardService
	StatusJob        ClientStatusJob
}

// NewClientServices wires the client services over serverAdapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*ClientServices, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is nil")
	}

	sessionSvc := NewClientSessionService(serverAdapter, logger)
	dashboardSvc := NewClientDashboardService(serverAdapter, logger)

	return &ClientServices{
		SessionService:   sessionSvc,
		DashboardService: dashboardSvc,
		StatusJob:        NewClientStatusJob(sessionSvc, dashboardSvc),
	}, nil
}
