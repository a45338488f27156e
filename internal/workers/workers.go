// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers groups workers. Nil entries are skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	w := &Workers{logger: logger}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned, which happens after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()

	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("workers stopped")
	}
}
