// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pay-trial/internal/adapter"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

type clientSessionService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientSessionService creates a [ClientSessionService] over serverAdapter.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{adapter: serverAdapter, logger: logger}
}

func (s *clientSessionService) Signup(ctx context.Context, req models.SignupRequest) (models.SessionStatus, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.SessionStatus{}, ErrInvalidDataProvided
	}

	status, err := s.adapter.Signup(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("email", req.Email).Msg("signup failed")
		return models.SessionStatus{}, mapAdapterError(err)
	}

	return status, nil
}

func (s *clientSessionService) Login(ctx context.Context, req models.LoginRequest) (models.SessionStatus, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.SessionStatus{}, ErrInvalidDataProvided
	}

	status, err := s.adapter.Login(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("email", req.Email).Msg("login failed")
		return models.SessionStatus{}, mapAdapterError(err)
	}

	return status, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Err(err).Msg("logout failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientSessionService) Status(ctx context.Context) (models.SessionStatus, error) {
	status, err := s.adapter.Session(ctx)
	if err != nil {
		return models.SessionStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (s *clientSessionService) StartTrial(ctx context.Context, card models.CardDetails) (models.SessionStatus, error) {
	if !s.SignedIn() {
		return models.SessionStatus{}, ErrNotSignedIn
	}

	status, err := s.adapter.StartTrial(ctx, card)
	if err != nil {
		// never log the card itself
		s.logger.Err(err).Msg("start trial failed")
		return models.SessionStatus{}, mapAdapterError(err)
	}

	return status, nil
}

func (s *clientSessionService) SignedIn() bool {
	return s.adapter.Token() != ""
}
