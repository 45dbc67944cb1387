// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package store

const (
	deleteResourceTypes = `DELETE FROM resource_types;`

	saveResourceType = `
		INSERT INTO resource_types (id, slug, name, field_specs)
		VALUES (?, ?, ?, ?);`

	markAllPending = `
		UPDATE resources
		SET sync_state = ?
		WHERE account_id = ?;`

	getKnownModifiedAt = `
		SELECT id, modified_at
		FROM resources
		WHERE account_id = ?;`

	upsertResource = `
		INSERT INTO resources (
			id,
			account_id,
			resource_type_id,
			folder_parent_id,
			favorite_id,
			name,
			username,
			uri,
			description,
			permission,
			modified_at,
			sync_state
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			resource_type_id = excluded.resource_type_id,
			folder_parent_id = excluded.folder_parent_id,
			favorite_id      = excluded.favorite_id,
			name             = excluded.name,
			username         = excluded.username,
			uri              = excluded.uri,
			description      = excluded.description,
			permission       = excluded.permission,
			modified_at      = excluded.modified_at,
			sync_state       = excluded.sync_state;`

	deleteResourceTagEdges = `DELETE FROM resource_tags WHERE resource_id = ?;`

	insertResourceTagEdge = `
		INSERT OR REPLACE INTO resource_tags (resource_id, tag_id)
		VALUES (?, ?);`

	deleteResourcePermissionEdges = `
		DELETE FROM permissions
		WHERE account_id = ? AND aco = 'Resource' AND aco_foreign_key = ?;`

	upsertPermissionEdge = `
		INSERT OR REPLACE INTO permissions (id, account_id, aco, aco_foreign_key, aro, aro_foreign_key, type)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	markPendingRemoved = `
		UPDATE resources
		SET sync_state = ?
		WHERE account_id = ? AND sync_state = ?;`

	deletePendingTagEdges = `
		DELETE FROM resource_tags
		WHERE resource_id IN (
			SELECT id FROM resources WHERE account_id = ? AND sync_state = ?
		);`

	deletePendingPermissionEdges = `
		DELETE FROM permissions
		WHERE account_id = ? AND aco = 'Resource' AND aco_foreign_key IN (
			SELECT id FROM resources WHERE account_id = ? AND sync_state = ?
		);`

	deletePendingResources = `
		DELETE FROM resources
		WHERE account_id = ? AND sync_state = ?;`

	deleteAccountFolders = `DELETE FROM folders WHERE account_id = ?;`

	insertFolder = `
		INSERT INTO folders (id, account_id, name, folder_parent_id)
		VALUES (?, ?, ?, ?);`

	deleteAccountTags = `DELETE FROM tags WHERE account_id = ?;`

	insertTag = `
		INSERT INTO tags (id, account_id, slug, is_shared)
		VALUES (?, ?, ?, ?);`

	deleteAccountPermissionsByACO = `DELETE FROM permissions WHERE account_id = ? AND aco = ?;`
)
