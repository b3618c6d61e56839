// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// Workers runs a fixed set of workers, each on its own goroutine.
type Workers struct {
	workers []Worker
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start stops any previous run, then launches every worker. A worker that
// returns an error is logged and not restarted.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(len(w.workers))
	w.mu.Unlock()

	for _, worker := range w.workers {
		go func(worker Worker) {
			defer w.wg.Done()
			if err := worker.Run(runCtx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Start").Msgf("worker %T stopped with error", worker)
			}
		}(worker)
	}
}

// Stop cancels all workers and waits for them to return. Safe to call when
// nothing is running.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
