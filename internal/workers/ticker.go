// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// TickerWorker calls fn every interval until its context is done.
type TickerWorker struct {
	interval time.Duration
	fn       func(ctx context.Context)
}

// NewTickerWorker returns a worker calling fn every interval. A non-positive
// interval defaults to one second.
func NewTickerWorker(interval time.Duration, fn func(ctx context.Context)) *TickerWorker {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickerWorker{interval: interval, fn: fn}
}

func (w *TickerWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.fn(ctx)
		}
	}
}
