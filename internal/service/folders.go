// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/models"
)

// SyncFolders implements [MirrorSyncService]. The folder set is small
// enough that no marking pass is warranted: the tree is replaced
// wholesale, parents inserted before children so the self-referencing
// foreign key holds at every point of the transaction.
func (s *mirrorSyncService) SyncFolders(ctx context.Context, scope models.Scope) error {
	log := logger.FromContext(ctx)

	folders, err := s.catalog.FetchFolders(ctx, scope)
	if err != nil {
		return fmt.Errorf("%w: folders: %w", ErrCatalogFetch, err)
	}

	ordered, dangling := orderFolders(folders)
	for _, folder := range dangling {
		log.Warn().
			Str("func", "mirrorSyncService.SyncFolders").
			Str("folder_id", folder.ID.String()).
			Str("parent_id", folder.FolderParentID.String()).
			Msg("folder parent missing from server set, skipping subtree member")
	}

	if err = s.mirror.ReplaceFolders(ctx, scope, ordered); err != nil {
		return fmt.Errorf("replace folders: %w", err)
	}

	edges := make([]models.PermissionEdge, 0, len(ordered))
	for _, folder := range ordered {
		edges = append(edges, folder.Permissions...)
	}
	if err = s.mirror.ReplacePermissions(ctx, scope, models.ACOFolder, edges); err != nil {
		return fmt.Errorf("replace folder permissions: %w", err)
	}

	log.Info().
		Str("func", "mirrorSyncService.SyncFolders").
		Int("folders", len(ordered)).
		Int("skipped", len(dangling)).
		Msg("folder tree replaced")

	return nil
}

// SyncTags implements [MirrorSyncService].
func (s *mirrorSyncService) SyncTags(ctx context.Context, scope models.Scope) error {
	log := logger.FromContext(ctx)

	tags, err := s.catalog.FetchTags(ctx, scope)
	if err != nil {
		return fmt.Errorf("%w: tags: %w", ErrCatalogFetch, err)
	}

	if err = s.mirror.ReplaceTags(ctx, scope, tags); err != nil {
		return fmt.Errorf("replace tags: %w", err)
	}

	log.Info().
		Str("func", "mirrorSyncService.SyncTags").
		Int("tags", len(tags)).
		Msg("tag set replaced")

	return nil
}

// orderFolders arranges folders parent-first. Roots (no parent) come
// out in input order, then repeated passes admit every folder whose
// parent is already admitted. Folders left over after the passes stop
// making progress reference a parent outside the set (or sit on a
// cycle, which a healthy server never produces) and are returned as
// dangling. Termination is guaranteed: each pass either admits at
// least one folder or ends the loop.
func orderFolders(folders []models.Folder) (ordered, dangling []models.Folder) {
	ordered = make([]models.Folder, 0, len(folders))
	admitted := make(map[uuid.UUID]struct{}, len(folders))

	pending := make([]models.Folder, 0, len(folders))
	for _, folder := range folders {
		if folder.FolderParentID == nil {
			ordered = append(ordered, folder)
			admitted[folder.ID] = struct{}{}
		} else {
			pending = append(pending, folder)
		}
	}

	for len(pending) > 0 {
		next := pending[:0:0]
		for _, folder := range pending {
			if _, ok := admitted[*folder.FolderParentID]; ok {
				ordered = append(ordered, folder)
				admitted[folder.ID] = struct{}{}
			} else {
				next = append(next, folder)
			}
		}
		if len(next) == len(pending) {
			return ordered, next
		}
		pending = next
	}

	return ordered, nil
}
