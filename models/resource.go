// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MetadataKeyType identifies the scope of the key that protects a
// resource's metadata blob.
type MetadataKeyType string

const (
	// MetadataKeyShared marks metadata encrypted with an account-wide
	// shared key. Shared keys may be inaccessible to the current user.
	MetadataKeyShared MetadataKeyType = "shared_key"

	// MetadataKeyUser marks metadata encrypted with the current user's
	// personal key.
	MetadataKeyUser MetadataKeyType = "user_key"
)

// Resource is a single secret-bearing entity (credential, TOTP entry)
// as reported by the remote catalog.
//
// Once persisted, a Resource is owned exclusively by the local mirror
// store; the sync driver holds only a transient working copy during a
// pass. Metadata, when non-empty, is the armored ciphertext of a
// ResourceMetadata document; after decryption the plaintext fields
// (Name, Username, URI, Description) are overwritten in place.
type Resource struct {
	ID             uuid.UUID  `json:"id"`
	TypeID         uuid.UUID  `json:"resource_type_id"`
	FolderParentID *uuid.UUID `json:"folder_parent_id,omitempty"`
	FavoriteID     *uuid.UUID `json:"favorite_id,omitempty"`

	Name        string `json:"name"`
	Username    string `json:"username,omitempty"`
	URI         string `json:"uri,omitempty"`
	Description string `json:"description,omitempty"`

	// Permission is the caller's own permission on this resource
	// (e.g. "owner", "update", "read").
	Permission string `json:"permission,omitempty"`

	TagIDs           []uuid.UUID      `json:"tag_ids,omitempty"`
	GroupPermissions []PermissionEdge `json:"group_permissions,omitempty"`
	UserPermissions  []PermissionEdge `json:"user_permissions,omitempty"`

	ModifiedAt time.Time `json:"modified"`

	// MetadataKeyID and MetadataKeyType are set only when Metadata is
	// a ciphertext blob.
	MetadataKeyID   *uuid.UUID      `json:"metadata_key_id,omitempty"`
	MetadataKeyType MetadataKeyType `json:"metadata_key_type,omitempty"`

	// Metadata holds the armored metadata ciphertext, or "" for a
	// plain record.
	Metadata string `json:"metadata,omitempty"`
}

// HasName reports whether the resource carries a non-blank display name.
func (r Resource) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// Encrypted reports whether the resource carries a metadata ciphertext
// that must be decrypted before the record can be persisted.
func (r Resource) Encrypted() bool {
	return r.Metadata != ""
}

// ResourceMetadata is the decrypted form of a resource's metadata blob.
// Name is mandatory; a decrypted document without a name discards the
// whole record.
type ResourceMetadata struct {
	Name        string   `json:"name"`
	Username    string   `json:"username,omitempty"`
	URIs        []string `json:"uris,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Apply copies the decrypted metadata fields onto the resource working
// copy, replacing any placeholder wire values.
func (m ResourceMetadata) Apply(r *Resource) {
	r.Name = m.Name
	r.Username = m.Username
	r.Description = m.Description
	if len(m.URIs) > 0 {
		r.URI = m.URIs[0]
	}
}
