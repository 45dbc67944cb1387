// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhalenko/go-pass-mirror/models"
)

func testKey(b byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return key
}

func testDoc() models.ResourceMetadata {
	return models.ResourceMetadata{
		Name:        "gmail",
		Username:    "dk",
		URIs:        []string{"https://mail.google.com"},
		Description: "personal mailbox",
	}
}

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestMetadataKeyring_EncryptDecrypt_RoundTrip(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()
	keyring.RegisterKey(keyID, models.MetadataKeyUser, testKey(0x11))

	armored, err := keyring.Encrypt(testDoc(), keyID, models.MetadataKeyUser)
	require.NoError(t, err)
	require.NotEmpty(t, armored)

	got, err := keyring.Decrypt(armored, keyID, models.MetadataKeyUser)
	require.NoError(t, err)
	assert.Equal(t, testDoc(), got)
}

func TestMetadataKeyring_Decrypt_WrongKeyFails(t *testing.T) {
	keyring := NewMetadataKeyring()
	rightID := uuid.New()
	wrongID := uuid.New()
	keyring.RegisterKey(rightID, models.MetadataKeyShared, testKey(0x11))
	keyring.RegisterKey(wrongID, models.MetadataKeyShared, testKey(0x22))

	armored, err := keyring.Encrypt(testDoc(), rightID, models.MetadataKeyShared)
	require.NoError(t, err)

	// Ключ есть в keyring, но это другой ключ — auth tag не сойдётся.
	_, err = keyring.Decrypt(armored, wrongID, models.MetadataKeyShared)
	require.Error(t, err)
}

func TestMetadataKeyring_Decrypt_UnknownKey(t *testing.T) {
	keyring := NewMetadataKeyring()

	_, err := keyring.Decrypt("anything", uuid.New(), models.MetadataKeyShared)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMetadataKeyring_Decrypt_MalformedArmor(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()
	keyring.RegisterKey(keyID, models.MetadataKeyUser, testKey(0x11))

	tests := []struct {
		name    string
		armored string
	}{
		{name: "not base64", armored: "%%% не base64 %%%"},
		{name: "too short for nonce", armored: base64.StdEncoding.EncodeToString([]byte("tiny"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keyring.Decrypt(tt.armored, keyID, models.MetadataKeyUser)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadCiphertext)
		})
	}
}

func TestMetadataKeyring_Decrypt_TamperedCiphertext(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()
	keyring.RegisterKey(keyID, models.MetadataKeyUser, testKey(0x11))

	armored, err := keyring.Encrypt(testDoc(), keyID, models.MetadataKeyUser)
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(armored)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF // порча последнего байта ciphertext
	tampered := base64.StdEncoding.EncodeToString(blob)

	_, err = keyring.Decrypt(tampered, keyID, models.MetadataKeyUser)
	require.Error(t, err)
}

// ── HasAccess / RegisterKey ──────────────────────────────────────────────────

func TestMetadataKeyring_HasAccess(t *testing.T) {
	keyring := NewMetadataKeyring()
	sharedID := uuid.New()
	userID := uuid.New()

	assert.False(t, keyring.HasAccess(sharedID))

	keyring.RegisterKey(sharedID, models.MetadataKeyShared, testKey(0x11))
	keyring.RegisterKey(userID, models.MetadataKeyUser, testKey(0x22))

	assert.True(t, keyring.HasAccess(sharedID))
	assert.True(t, keyring.HasAccess(userID))
	assert.False(t, keyring.HasAccess(uuid.New()))
}

func TestMetadataKeyring_RegisterKey_ReplacesExisting(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()
	keyring.RegisterKey(keyID, models.MetadataKeyUser, testKey(0x11))

	armored, err := keyring.Encrypt(testDoc(), keyID, models.MetadataKeyUser)
	require.NoError(t, err)

	// Ротация ключа под тем же id: старые blob-ы больше не читаются.
	keyring.RegisterKey(keyID, models.MetadataKeyUser, testKey(0x33))

	_, err = keyring.Decrypt(armored, keyID, models.MetadataKeyUser)
	require.Error(t, err)
}

func TestMetadataKeyring_KeyScopesAreIsolated(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()
	keyring.RegisterKey(keyID, models.MetadataKeyShared, testKey(0x11))

	// Ключ установлен как shared — под user-скоупом его нет.
	_, err := keyring.Encrypt(testDoc(), keyID, models.MetadataKeyUser)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// ── DeriveUserKey ────────────────────────────────────────────────────────────

func TestMetadataKeyring_DeriveUserKey_Deterministic(t *testing.T) {
	keyring := NewMetadataKeyring()
	salt := []byte("0123456789abcdef")

	key1 := keyring.DeriveUserKey("correct horse battery staple", salt)
	key2 := keyring.DeriveUserKey("correct horse battery staple", salt)

	require.Len(t, key1, 32)
	assert.True(t, bytes.Equal(key1, key2), "одинаковые пароль и соль дают одинаковый ключ")
}

func TestMetadataKeyring_DeriveUserKey_SaltMatters(t *testing.T) {
	keyring := NewMetadataKeyring()

	key1 := keyring.DeriveUserKey("passphrase", []byte("salt-one--------"))
	key2 := keyring.DeriveUserKey("passphrase", []byte("salt-two--------"))

	assert.False(t, bytes.Equal(key1, key2))
}

func TestMetadataKeyring_DerivedKeyUsableForEncryption(t *testing.T) {
	keyring := NewMetadataKeyring()
	keyID := uuid.New()

	derived := keyring.DeriveUserKey("passphrase", []byte("0123456789abcdef"))
	keyring.RegisterKey(keyID, models.MetadataKeyUser, derived)

	armored, err := keyring.Encrypt(testDoc(), keyID, models.MetadataKeyUser)
	require.NoError(t, err)

	got, err := keyring.Decrypt(armored, keyID, models.MetadataKeyUser)
	require.NoError(t, err)
	assert.Equal(t, testDoc(), got)
}
