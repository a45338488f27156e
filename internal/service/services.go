// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

// Services groups the server-side services used by the transport layer.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	ToolService    ToolService
}

func NewServices(premium PremiumChecker, notifier Notifier, clock Clock, cfg config.App, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
		ToolService:    NewToolService(nil, premium, notifier, clock, logger),
	}, nil
}
