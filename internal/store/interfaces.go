// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mirror_store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// MirrorStore is the local mirror of the remote catalog: per-entity
// upsert, bulk sync-state transitions, deletion, and the full-replace
// primitives for relations without a server-side diff API.
//
// Every method is scoped to one account; no method touches rows of
// another scope. Methods documented as transactional either commit all
// of their writes or none of them.
type MirrorStore interface {
	// SaveResourceTypes replaces the accepted resource-type catalog.
	// Transactional.
	SaveResourceTypes(ctx context.Context, types []models.ResourceType) error

	// BulkMarkPending transitions every cached resource of the scope to
	// StatePendingVerification in a single bulk statement. Run once at
	// the start of a pass.
	BulkMarkPending(ctx context.Context, scope models.Scope) error

	// KnownModifiedAt returns the last-seen modification timestamp of
	// every cached resource of the scope in one bulk lookup.
	KnownModifiedAt(ctx context.Context, scope models.Scope) (map[uuid.UUID]time.Time, error)

	// UpsertResources writes the accepted records of one page chunk and
	// sets their state to StateStable. Transactional; a failure leaves
	// chunks committed by earlier calls untouched.
	UpsertResources(ctx context.Context, scope models.Scope, records []models.Resource) error

	// MarkStable transitions the given ids to StateStable without
	// touching their bodies. Used for records whose remote copy is not
	// newer than the cache; the sweep depends on this transition.
	MarkStable(ctx context.Context, scope models.Scope, ids []uuid.UUID) error

	// DeletePending removes every resource of the scope still in
	// StatePendingVerification, with its tag and permission edges.
	// Transactional. Run once after the last page of a pass.
	DeletePending(ctx context.Context, scope models.Scope) error

	// ReplaceFolders deletes the scope's folder set and inserts the
	// given folders in slice order inside one transaction. Callers must
	// order parents before children: the parent reference is a hard
	// foreign key.
	ReplaceFolders(ctx context.Context, scope models.Scope, ordered []models.Folder) error

	// ReplaceTags replaces the scope's tag set. Transactional.
	ReplaceTags(ctx context.Context, scope models.Scope, tags []models.Tag) error

	// ReplacePermissions replaces the scope's permission edges for one
	// ACO kind (e.g. "Folder"), leaving edges of other kinds alone.
	// Transactional.
	ReplacePermissions(ctx context.Context, scope models.Scope, aco string, edges []models.PermissionEdge) error
}
