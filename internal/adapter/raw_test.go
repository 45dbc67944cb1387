// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhalenko/go-pass-mirror/models"
)

func validRawResource() rawResource {
	return rawResource{
		ID:       uuid.NewString(),
		TypeID:   uuid.NewString(),
		Name:     "gmail",
		Modified: "2026-03-10T12:00:00Z",
	}
}

// ── rawResource.decode ───────────────────────────────────────────────────────

func TestRawResource_Decode(t *testing.T) {
	raw := validRawResource()
	keyID := uuid.NewString()
	raw.Metadata = "armored"
	raw.MetadataKeyID = &keyID
	raw.MetadataKeyType = "shared_key"

	res, err := raw.decode()
	require.NoError(t, err)

	assert.Equal(t, raw.ID, res.ID.String())
	assert.Equal(t, models.MetadataKeyShared, res.MetadataKeyType)
	require.NotNil(t, res.MetadataKeyID)
	assert.Equal(t, keyID, res.MetadataKeyID.String())
}

func TestRawResource_Decode_Errors(t *testing.T) {
	keyID := uuid.NewString()

	tests := []struct {
		name   string
		mutate func(r *rawResource)
	}{
		{
			name:   "bad id",
			mutate: func(r *rawResource) { r.ID = "not-a-uuid" },
		},
		{
			name:   "bad modified timestamp",
			mutate: func(r *rawResource) { r.Modified = "yesterday" },
		},
		{
			// Поля ciphertext ходят только вместе: metadata без key id —
			// ошибка всей строки.
			name:   "metadata without key id",
			mutate: func(r *rawResource) { r.Metadata = "armored" },
		},
		{
			name: "unknown metadata key type",
			mutate: func(r *rawResource) {
				r.Metadata = "armored"
				r.MetadataKeyID = &keyID
				r.MetadataKeyType = "quantum_key"
			},
		},
		{
			name:   "bad tag id",
			mutate: func(r *rawResource) { r.TagIDs = []string{"not-a-uuid"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawResource()
			tt.mutate(&raw)

			_, err := raw.decode()
			require.Error(t, err)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, "resource", decodeErr.Entity)
		})
	}
}

// ── rawResourceType.decode ───────────────────────────────────────────────────

func TestRawResourceType_Decode_StrictDefinition(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		wantErr    bool
	}{
		{
			name:       "valid definition",
			definition: `{"fields": [{"name": "password", "type": "string", "required": true}]}`,
		},
		{
			// Неизвестное поле в definition инвалидирует весь тип.
			name:       "unknown field rejected",
			definition: `{"fields": [], "extra": true}`,
			wantErr:    true,
		},
		{
			name:       "empty fields rejected",
			definition: `{"fields": []}`,
			wantErr:    true,
		},
		{
			name:       "spec without name rejected",
			definition: `{"fields": [{"type": "string"}]}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawResourceType{
				ID:         uuid.NewString(),
				Slug:       "password-v5",
				Name:       "Password",
				Definition: []byte(tt.definition),
			}

			_, err := raw.decode()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
