// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
)

const defaultRefreshInterval = time.Minute

// Refresher reloads a record snapshot. service.RecordCache satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type refreshJob struct {
	records  Refresher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that reloads records right after Start and
// then every interval (one minute when zero or negative). Failures are
// logged and the previous snapshot stays in place; no user status is set.
func NewRefreshJob(records Refresher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &refreshJob{records: records, interval: interval, logger: logger}
}

// Start implements Worker. A running job is stopped first.
func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.refresh(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("refresh job started")
}

// Stop implements Worker.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *refreshJob) refresh(ctx context.Context) {
	if err := j.records.Refresh(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Msg("background refresh failed")
	}
}
