// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"github.com/dkhalenko/go-pass-mirror/internal/adapter"
	"github.com/dkhalenko/go-pass-mirror/internal/crypto"
	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/internal/store"
	"github.com/dkhalenko/go-pass-mirror/models"
)

type MirrorServices struct {
	SyncService MirrorSyncService
	SyncJob     MirrorSyncJob
}

func NewMirrorServices(
	catalog adapter.CatalogClient,
	keyring crypto.MetadataKeyring,
	mirror store.MirrorStore,
	mode models.SyncMode,
	log *logger.Logger,
) *MirrorServices {
	syncSvc := NewMirrorSyncService(catalog, keyring, mirror, log)

	return &MirrorServices{
		SyncService: syncSvc,
		SyncJob:     NewMirrorSyncJob(syncSvc, mode),
	}
}
