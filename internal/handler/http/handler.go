// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/models"
)

// SessionManager is the part of the session manager the transport needs.
type SessionManager interface {
	Login(ctx context.Context, email, secret string) bool
	Signup(ctx context.Context, name, email, secret string) bool
	Logout(ctx context.Context)
	StartTrial(ctx context.Context, details models.CardDetails) bool
	Current() (models.Account, bool)
	Status() models.SessionStatus
}

// NotificationFeed lists recently emitted notifications, newest first.
type NotificationFeed interface {
	Recent(n int) []models.Notification
}

type Handler struct {
	services *service.Services
	session  SessionManager
	feed     NotificationFeed

	logger *logger.Logger
}

func NewHandler(services *service.Services, session SessionManager, feed NotificationFeed, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		session:  session,
		feed:     feed,
		logger:   logger,
	}
}
