// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

import "github.com/google/uuid"

// Folder is one node of the remote folder tree. Nodes are kept in an
// arena keyed by ID; the parent is resolved by lookup rather than an
// embedded pointer, so self-referential structures carry no ownership
// cycles.
//
// Insert-order invariant: a folder may only be written to the mirror
// after its parent (when FolderParentID is non-nil) has been written
// in the same pass. The parent reference is a hard foreign key in the
// mirror schema.
type Folder struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	FolderParentID *uuid.UUID       `json:"folder_parent_id,omitempty"`
	Permissions    []PermissionEdge `json:"permissions,omitempty"`
}

// Tag is a label attached to resources. Tags have no server-side diff
// API and are rebuilt by full replace on every pass.
type Tag struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	IsShared bool      `json:"is_shared"`
}

// ACO kinds a permission edge may point at.
const (
	ACOResource = "Resource"
	ACOFolder   = "Folder"
)

// PermissionEdge is one access-control edge: an ACO (resource or
// folder) granted to an ARO (user or group) at a permission level.
type PermissionEdge struct {
	ID            uuid.UUID `json:"id"`
	ACO           string    `json:"aco"`
	ACOForeignKey uuid.UUID `json:"aco_foreign_key"`
	ARO           string    `json:"aro"`
	AROForeignKey uuid.UUID `json:"aro_foreign_key"`
	Type          int       `json:"type"`
}
