// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/models"
)

type mirrorSyncJob struct {
	syncService MirrorSyncService
	mode        models.SyncMode

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMirrorSyncJob creates a mirrorSyncJob that runs a full pass
// (resources, then folders, then tags) on a ticker, always with the
// given sync mode. The job is idle until Start is called.
func NewMirrorSyncJob(syncService MirrorSyncService, mode models.SyncMode) MirrorSyncJob {
	return &mirrorSyncJob{syncService: syncService, mode: mode}
}

// Start implements MirrorSyncJob. It stops any previously running job,
// then launches a background goroutine that runs a full pass every
// interval. If interval is zero or negative it defaults to 5 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *mirrorSyncJob) Start(ctx context.Context, scope models.Scope, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runPass(jobCtx, scope)
			}
		}
	}()
}

// runPass executes one full pass under a child logger tagged with a
// pass id, so all entries of one pass can be correlated. Errors are
// swallowed: a failed pass leaves the mirror partially converged and
// the next tick retries.
func (j *mirrorSyncJob) runPass(ctx context.Context, scope models.Scope) {
	l := logger.FromContext(ctx).GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("pass_id", uuid.NewString())
	})
	ctx = l.WithContext(ctx)

	_ = j.syncService.Synchronize(ctx, scope, j.mode)
	_ = j.syncService.SyncFolders(ctx, scope)
	_ = j.syncService.SyncTags(ctx, scope)
}

// Stop implements MirrorSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *mirrorSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
