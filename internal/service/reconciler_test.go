// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhalenko/go-pass-mirror/models"
)

var (
	knownTypeID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	unknownTypeID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	sharedKeyID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	userKeyID     = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func newTestReconciler(accessibleKeys ...uuid.UUID) *Reconciler {
	accessible := make(map[uuid.UUID]struct{}, len(accessibleKeys))
	for _, id := range accessibleKeys {
		accessible[id] = struct{}{}
	}

	types := []models.ResourceType{{ID: knownTypeID, Slug: "password-v5"}}
	return NewReconciler(types, func(keyID uuid.UUID) bool {
		_, ok := accessible[keyID]
		return ok
	})
}

// baseResource — валидный plain-ресурс известного типа.
func baseResource() models.Resource {
	return models.Resource{
		ID:         uuid.New(),
		TypeID:     knownTypeID,
		Name:       "gmail",
		ModifiedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

// ── Decide ───────────────────────────────────────────────────────────────────

func TestReconciler_Decide_Matrix(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	older := now.Add(-time.Hour)
	newer := now.Add(time.Hour)

	tests := []struct {
		name    string
		mutate  func(r *models.Resource)
		knownAt *time.Time
		want    models.Decision
	}{
		{
			name:   "unknown type ignored",
			mutate: func(r *models.Resource) { r.TypeID = unknownTypeID },
			want:   models.Ignore(models.IgnoreUnknownType),
		},
		{
			name:   "blank name ignored",
			mutate: func(r *models.Resource) { r.Name = "   " },
			want:   models.Ignore(models.IgnoreMissingName),
		},
		{
			name: "inaccessible shared key deferred",
			mutate: func(r *models.Resource) {
				r.Metadata = "armored"
				r.MetadataKeyID = &sharedKeyID
				r.MetadataKeyType = models.MetadataKeyShared
			},
			want: models.DeferInaccessible(),
		},
		{
			name:    "remote older than cache skipped",
			knownAt: &newer,
			want:    models.SkipUnchanged(),
		},
		{
			// Равные метки времени трактуются в пользу кэша (<=, не <):
			// повторный прогон по неизменным данным не делает записей.
			name:    "timestamp tie favors cache",
			knownAt: &now,
			want:    models.SkipUnchanged(),
		},
		{
			name:    "remote newer than cache upserted",
			knownAt: &older,
			want:    models.Upsert(),
		},
		{
			name: "unknown id with ciphertext upserted after decrypt",
			mutate: func(r *models.Resource) {
				r.Metadata = "armored"
				r.MetadataKeyID = &userKeyID
				r.MetadataKeyType = models.MetadataKeyUser
			},
			want: models.UpsertAfterDecrypt(),
		},
		{
			name: "newer ciphertext record upserted after decrypt",
			mutate: func(r *models.Resource) {
				r.Metadata = "armored"
				r.MetadataKeyID = &userKeyID
				r.MetadataKeyType = models.MetadataKeyUser
			},
			knownAt: &older,
			want:    models.UpsertAfterDecrypt(),
		},
		{
			name: "unknown plain id upserted",
			want: models.Upsert(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReconciler(userKeyID) // shared key недоступен
			remote := baseResource()
			if tt.mutate != nil {
				tt.mutate(&remote)
			}

			got := r.Decide(remote, tt.knownAt)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconciler_Decide_AccessibleSharedKey(t *testing.T) {
	// Доступный shared key не откладывает запись — идёт обычный путь.
	r := newTestReconciler(sharedKeyID)

	remote := baseResource()
	remote.Metadata = "armored"
	remote.MetadataKeyID = &sharedKeyID
	remote.MetadataKeyType = models.MetadataKeyShared

	got := r.Decide(remote, nil)
	assert.Equal(t, models.UpsertAfterDecrypt(), got)
}

func TestReconciler_Decide_UnknownTypeBeatsEverything(t *testing.T) {
	// Неизвестный тип отсекается до всех остальных проверок,
	// даже если имя пустое и ключ недоступен.
	r := newTestReconciler()

	remote := baseResource()
	remote.TypeID = unknownTypeID
	remote.Name = ""
	remote.Metadata = "armored"
	remote.MetadataKeyID = &sharedKeyID
	remote.MetadataKeyType = models.MetadataKeyShared

	got := r.Decide(remote, nil)
	require.Equal(t, models.DecisionIgnore, got.Kind)
	assert.Equal(t, models.IgnoreUnknownType, got.Reason)
}

func TestReconciler_Decide_DeferBeatsTimestampCheck(t *testing.T) {
	// Недоступный ключ откладывает запись даже при протухшем кэше.
	r := newTestReconciler()
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	remote := baseResource()
	remote.Metadata = "armored"
	remote.MetadataKeyID = &sharedKeyID
	remote.MetadataKeyType = models.MetadataKeyShared

	got := r.Decide(remote, &older)
	assert.Equal(t, models.DeferInaccessible(), got)
}
