// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkhalenko/go-pass-mirror/models"
)

func folderNode(name string, parent *uuid.UUID) models.Folder {
	return models.Folder{ID: uuid.New(), Name: name, FolderParentID: parent}
}

// ── orderFolders ─────────────────────────────────────────────────────────────

func TestOrderFolders_ParentBeforeChild(t *testing.T) {
	a := folderNode("A", nil)
	b := folderNode("B", &a.ID)
	c := folderNode("C", &b.ID)

	// Вход в «неудобном» порядке: внук, корень, ребёнок.
	ordered, dangling := orderFolders([]models.Folder{c, a, b})

	require.Empty(t, dangling)
	require.Len(t, ordered, 3)
	assert.Equal(t, []models.Folder{a, b, c}, ordered)
}

func TestOrderFolders_PositionInvariant(t *testing.T) {
	root := folderNode("root", nil)
	children := []models.Folder{
		folderNode("x", &root.ID),
		folderNode("y", &root.ID),
		folderNode("z", &root.ID),
	}
	grandchild := folderNode("deep", &children[1].ID)

	input := []models.Folder{grandchild, children[2], children[0], root, children[1]}
	ordered, dangling := orderFolders(input)

	require.Empty(t, dangling)
	require.Len(t, ordered, len(input))

	// Каждый родитель стоит раньше любого из своих детей.
	position := make(map[uuid.UUID]int, len(ordered))
	for i, f := range ordered {
		position[f.ID] = i
	}
	for _, f := range ordered {
		if f.FolderParentID != nil {
			assert.Less(t, position[*f.FolderParentID], position[f.ID],
				"родитель %q должен идти раньше потомка %q", f.FolderParentID, f.ID)
		}
	}
}

func TestOrderFolders_DanglingParentSkipped(t *testing.T) {
	missing := uuid.New()
	a := folderNode("A", nil)
	orphan := folderNode("orphan", &missing)

	ordered, dangling := orderFolders([]models.Folder{orphan, a})

	assert.Equal(t, []models.Folder{a}, ordered)
	assert.Equal(t, []models.Folder{orphan}, dangling)
}

func TestOrderFolders_CycleTerminates(t *testing.T) {
	// Здоровый сервер циклов не отдаёт, но алгоритм обязан завершиться
	// и вернуть участников цикла как dangling.
	aID := uuid.New()
	bID := uuid.New()
	a := models.Folder{ID: aID, Name: "A", FolderParentID: &bID}
	b := models.Folder{ID: bID, Name: "B", FolderParentID: &aID}
	root := folderNode("root", nil)

	ordered, dangling := orderFolders([]models.Folder{a, b, root})

	assert.Equal(t, []models.Folder{root}, ordered)
	assert.ElementsMatch(t, []models.Folder{a, b}, dangling)
}

func TestOrderFolders_Empty(t *testing.T) {
	ordered, dangling := orderFolders(nil)
	assert.Empty(t, ordered)
	assert.Empty(t, dangling)
}

// ── SyncFolders ──────────────────────────────────────────────────────────────

func TestMirrorSyncService_SyncFolders_ReplacesOrderedWithPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCatalog, _, mockStore := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	a := folderNode("A", nil)
	a.Permissions = []models.PermissionEdge{{
		ID:            uuid.New(),
		ACO:           models.ACOFolder,
		ACOForeignKey: a.ID,
		ARO:           "User",
		AROForeignKey: testScope.UserID,
		Type:          15,
	}}
	b := folderNode("B", &a.ID)

	mockCatalog.EXPECT().FetchFolders(gomock.Any(), testScope).
		Return([]models.Folder{b, a}, nil)
	mockStore.EXPECT().ReplaceFolders(gomock.Any(), testScope, []models.Folder{a, b}).Return(nil)
	mockStore.EXPECT().ReplacePermissions(gomock.Any(), testScope, models.ACOFolder, a.Permissions).Return(nil)

	err := svc.SyncFolders(ctx, testScope)
	require.NoError(t, err)
}

func TestMirrorSyncService_SyncFolders_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCatalog, _, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockCatalog.EXPECT().FetchFolders(gomock.Any(), testScope).
		Return(nil, errors.New("status 500"))

	err := svc.SyncFolders(ctx, testScope)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogFetch)
}

// ── SyncTags ─────────────────────────────────────────────────────────────────

func TestMirrorSyncService_SyncTags_FullReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCatalog, _, mockStore := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	tags := []models.Tag{
		{ID: uuid.New(), Slug: "work"},
		{ID: uuid.New(), Slug: "shared", IsShared: true},
	}

	mockCatalog.EXPECT().FetchTags(gomock.Any(), testScope).Return(tags, nil)
	mockStore.EXPECT().ReplaceTags(gomock.Any(), testScope, tags).Return(nil)

	err := svc.SyncTags(ctx, testScope)
	require.NoError(t, err)
}

func TestMirrorSyncService_SyncTags_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCatalog, _, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockCatalog.EXPECT().FetchTags(gomock.Any(), testScope).
		Return(nil, errors.New("timeout"))

	err := svc.SyncTags(ctx, testScope)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogFetch)
}
