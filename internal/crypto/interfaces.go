// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/metadata_decryptor_mock.go -package=mock

import (
	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// MetadataDecryptor is the consumed interface of the metadata
// decryption service: key accessibility plus armored-blob decryption.
//
// Key inaccessibility is an expected condition, not an error: shared
// keys may simply not have been distributed to the current user yet.
type MetadataDecryptor interface {
	// HasAccess reports whether the key identified by keyID is present
	// in the keyring and usable for decryption.
	HasAccess(keyID uuid.UUID) bool

	// Decrypt opens the armored metadata blob with the identified key
	// and returns the structured plaintext document. Returns an error
	// when the key is absent, the armor is malformed, or the
	// authentication tag does not verify.
	Decrypt(armored string, keyID uuid.UUID, keyType models.MetadataKeyType) (models.ResourceMetadata, error)
}

// MetadataKeyring is a MetadataDecryptor whose keys can be installed at
// session unlock time.
type MetadataKeyring interface {
	MetadataDecryptor

	// RegisterKey installs a metadata key under the given id and scope,
	// replacing any previous key with the same id.
	RegisterKey(keyID uuid.UUID, keyType models.MetadataKeyType, key []byte)

	// DeriveUserKey derives the user's personal metadata key from the
	// unlock passphrase and account salt via Argon2id.
	DeriveUserKey(passphrase string, salt []byte) []byte

	// Encrypt seals a metadata document under the identified key and
	// returns the armored blob. The inverse of Decrypt.
	Encrypt(doc models.ResourceMetadata, keyID uuid.UUID, keyType models.MetadataKeyType) (string, error)
}
