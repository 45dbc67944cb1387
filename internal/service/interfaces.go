// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"context"
	"time"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// MirrorSyncService is the sole entry point of the synchronization
// engine, invoked by the session-lifecycle layer.
type MirrorSyncService interface {
	// Synchronize runs one full mark-and-sweep reconciliation pass for
	// the scope. It is idempotent: re-running against unchanged server
	// state performs no decrypt or write work beyond the mark/sweep
	// bookkeeping, so callers retry failed passes by simply calling it
	// again.
	Synchronize(ctx context.Context, scope models.Scope, mode models.SyncMode) error

	// SyncFolders rebuilds the scope's folder tree by full replace,
	// inserting parents before children. Folders whose parent never
	// appears in the server set are skipped with a warning.
	SyncFolders(ctx context.Context, scope models.Scope) error

	// SyncTags rebuilds the scope's tag set by full replace.
	SyncTags(ctx context.Context, scope models.Scope) error
}

// MirrorSyncJob is a background worker that periodically runs a full
// pass (resources, folders, tags) for the session scope.
type MirrorSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, scope models.Scope, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
