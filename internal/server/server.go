// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/handler"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Runner
	logger     *logger.Logger
}

// NewServer builds the server from handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: workers, logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts the workers and serve, then blocks until ctx is done or serve
// returns on its own. It shuts everything down and waits for all goroutines.
func (s *server) run(ctx context.Context, serve func()) {
	workersCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	var wg sync.WaitGroup

	if s.workers != nil {
		s.logger.Info().Msg("Launching workers")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(workersCtx)
		}()
	}

	s.logger.Info().Msg("Launching HTTP server")
	serverDone := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(serverDone)
		serve()
	}()

	select {
	case <-ctx.Done():
	case <-serverDone:
		s.logger.Warn().Msg("HTTP server stopped unexpectedly")
	}

	cancelWorkers()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
