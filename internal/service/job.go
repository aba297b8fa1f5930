// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bank-client/internal/logger"
)

const defaultRefreshInterval = time.Minute

type profileRefreshJob struct {
	session  SessionSynchronizer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProfileRefreshJob creates a job that calls session.Refresh on a ticker.
// The job is idle until Start is called. A non-positive interval defaults to
// one minute.
func NewProfileRefreshJob(session SessionSynchronizer, interval time.Duration, log *logger.Logger) ProfileRefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &profileRefreshJob{session: session, interval: interval, logger: log}
}

// Start implements ProfileRefreshJob. It stops any previously running loop,
// then launches a goroutine that refreshes every interval until ctx is
// cancelled or Stop is called.
func (j *profileRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("func", "*profileRefreshJob.Start").Dur("interval", j.interval).Msg("profile refresh job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.session.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ProfileRefreshJob. It blocks until the loop has exited and
// is a no-op when the job is not running.
func (j *profileRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
