// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

// DecisionKind enumerates the possible outcomes of reconciling one
// remote item against its optional local snapshot.
type DecisionKind int

const (
	// DecisionIgnore drops the item for this pass (unknown type,
	// missing name, failed decryption). The reason field says why.
	DecisionIgnore DecisionKind = iota

	// DecisionSkipUnchanged leaves the local body untouched but still
	// marks the record as seen, which the sweep depends on.
	DecisionSkipUnchanged

	// DecisionUpsert writes the plain record body.
	DecisionUpsert

	// DecisionUpsertAfterDecrypt writes the record body after its
	// metadata ciphertext has been decrypted.
	DecisionUpsertAfterDecrypt

	// DecisionDeferInaccessible leaves the record alone entirely:
	// neither created, updated, nor swept. Used when a shared metadata
	// key is not accessible to the current user.
	DecisionDeferInaccessible
)

// IgnoreReason explains a DecisionIgnore outcome.
type IgnoreReason string

const (
	IgnoreUnknownType      IgnoreReason = "unknown_type"
	IgnoreMissingName      IgnoreReason = "missing_name"
	IgnoreDecryptionFailed IgnoreReason = "decryption_failed"
)

// Decision is the immutable outcome produced once per remote item.
type Decision struct {
	Kind   DecisionKind
	Reason IgnoreReason
}

func Ignore(reason IgnoreReason) Decision {
	return Decision{Kind: DecisionIgnore, Reason: reason}
}

func SkipUnchanged() Decision {
	return Decision{Kind: DecisionSkipUnchanged}
}

func Upsert() Decision {
	return Decision{Kind: DecisionUpsert}
}

func UpsertAfterDecrypt() Decision {
	return Decision{Kind: DecisionUpsertAfterDecrypt}
}

func DeferInaccessible() Decision {
	return Decision{Kind: DecisionDeferInaccessible}
}
