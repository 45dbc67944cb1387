// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

import "github.com/google/uuid"

// SyncState is the per-record verification flag driving mark-and-sweep
// reconciliation. It is deliberately a tri-state, decoupled from the
// record's own fields, so the sweep stays a pure bulk operation.
type SyncState int

const (
	// StateStable means the record was confirmed by the server during
	// the most recent pass.
	StateStable SyncState = 0

	// StatePendingVerification means the record is locally known but
	// not yet confirmed by any page of the current pass. Every cached
	// record enters this state at the start of a pass.
	StatePendingVerification SyncState = 1

	// StateRemoved is the terminal state of a record that stayed
	// unconfirmed through the whole pass. Records never reach this
	// state without first passing through StatePendingVerification in
	// the same pass.
	StateRemoved SyncState = 2
)

// Scope is the explicit account/session boundary a synchronization
// pass runs under. It is threaded through every driver and store call;
// there is no ambient "current account".
type Scope struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
}

// SyncModeKind selects the page pipeline scheduling strategy.
type SyncModeKind int

const (
	// SyncSerial requests page n+1 only after page n is fully
	// reconciled and committed.
	SyncSerial SyncModeKind = iota

	// SyncConcurrent runs up to MaxTasks fetch+reconcile+commit
	// pipelines in parallel. Page ordering across pipelines is
	// irrelevant: each item's decision depends only on its own id and
	// the timestamp map captured before the first fetch.
	SyncConcurrent
)

// SyncMode is the full scheduling configuration of one pass.
type SyncMode struct {
	Kind      SyncModeKind
	MaxTasks  int
	ChunkSize int
}

// Serial returns the sequential single-pipeline mode.
func Serial(chunkSize int) SyncMode {
	return SyncMode{Kind: SyncSerial, ChunkSize: chunkSize}
}

// Concurrent returns a bounded-concurrency mode running at most
// maxTasks page pipelines at once.
func Concurrent(maxTasks, chunkSize int) SyncMode {
	return SyncMode{Kind: SyncConcurrent, MaxTasks: maxTasks, ChunkSize: chunkSize}
}
