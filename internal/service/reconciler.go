// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// Reconciler is the pure per-record decision function of the engine.
// It maps one remote record plus the optionally known local
// modification timestamp to exactly one [models.Decision]; no storage
// layer or logger is required because the operation is stateless and
// produces no side effects.
//
// The accepted-type set and key-accessibility predicate are captured at
// construction, once per pass, so a Decide call touches nothing shared.
type Reconciler struct {
	acceptedTypes map[uuid.UUID]struct{}
	hasAccess     func(keyID uuid.UUID) bool
}

// NewReconciler constructs a Reconciler for one pass over the given
// accepted resource-type catalog. hasAccess reports whether a metadata
// key is usable for decryption.
func NewReconciler(types []models.ResourceType, hasAccess func(keyID uuid.UUID) bool) *Reconciler {
	accepted := make(map[uuid.UUID]struct{}, len(types))
	for _, rt := range types {
		accepted[rt.ID] = struct{}{}
	}

	return &Reconciler{
		acceptedTypes: accepted,
		hasAccess:     hasAccess,
	}
}

// Decide classifies one remote record:
//
//   - an unknown resource type yields Ignore(unknown_type); the record
//     is dropped along with its filtered-out type;
//   - a blank name yields Ignore(missing_name);
//   - a shared metadata key without access yields DeferInaccessible:
//     the record is left entirely alone, since inaccessibility may be
//     transient or permission-scoped;
//   - a remote not newer than the cache yields SkipUnchanged, avoiding
//     redundant decrypt/write work;
//   - present metadata ciphertext yields UpsertAfterDecrypt;
//   - otherwise the plain body is upserted.
//
// Timestamp ties favor the cache (<=, not <): re-running a pass against
// identical server state performs zero decrypt and write operations
// beyond the bulk mark/sweep bookkeeping, which makes the whole pass
// idempotent and safely resumable.
func (r *Reconciler) Decide(remote models.Resource, knownModifiedAt *time.Time) models.Decision {
	if _, ok := r.acceptedTypes[remote.TypeID]; !ok {
		return models.Ignore(models.IgnoreUnknownType)
	}

	if !remote.HasName() {
		return models.Ignore(models.IgnoreMissingName)
	}

	if remote.MetadataKeyType == models.MetadataKeyShared &&
		remote.MetadataKeyID != nil &&
		!r.hasAccess(*remote.MetadataKeyID) {
		return models.DeferInaccessible()
	}

	if knownModifiedAt != nil && !remote.ModifiedAt.After(*knownModifiedAt) {
		return models.SkipUnchanged()
	}

	if remote.Encrypted() {
		return models.UpsertAfterDecrypt()
	}

	return models.Upsert()
}
