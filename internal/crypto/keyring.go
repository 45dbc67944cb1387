// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"github.com/dkhalenko/go-pass-mirror/models"
)

var (
	ErrKeyNotFound   = errors.New("metadata key not found in keyring")
	ErrBadCiphertext = errors.New("metadata ciphertext malformed")
)

// metadataKeyring is the private implementation of [MetadataKeyring].
//
// Blobs are AES-256-GCM with a random 12-byte nonce prepended to the
// ciphertext (blob = nonce ‖ ciphertext), Base64 standard encoding as
// armor, JSON as the plaintext document format.
type metadataKeyring struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	mu     sync.RWMutex
	shared map[uuid.UUID][]byte
	user   map[uuid.UUID][]byte
}

// NewMetadataKeyring constructs an empty [MetadataKeyring] with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewMetadataKeyring() MetadataKeyring {
	return &metadataKeyring{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		shared:       make(map[uuid.UUID][]byte),
		user:         make(map[uuid.UUID][]byte),
	}
}

// RegisterKey implements [MetadataKeyring].
func (k *metadataKeyring) RegisterKey(keyID uuid.UUID, keyType models.MetadataKeyType, key []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if keyType == models.MetadataKeyShared {
		k.shared[keyID] = key
		return
	}
	k.user[keyID] = key
}

// DeriveUserKey implements [MetadataKeyring]. The result exists only in
// client memory and is never transmitted to the server.
func (k *metadataKeyring) DeriveUserKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// HasAccess implements [MetadataDecryptor]. A key is accessible when it
// is installed in either scope of the keyring.
func (k *metadataKeyring) HasAccess(keyID uuid.UUID) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	_, inShared := k.shared[keyID]
	_, inUser := k.user[keyID]
	return inShared || inUser
}

// Decrypt implements [MetadataDecryptor]. It Base64-decodes the armor,
// splits out the nonce, opens the ciphertext with the identified key,
// and unmarshals the resulting JSON document.
func (k *metadataKeyring) Decrypt(armored string, keyID uuid.UUID, keyType models.MetadataKeyType) (models.ResourceMetadata, error) {
	key, ok := k.lookup(keyID, keyType)
	if !ok {
		return models.ResourceMetadata{}, fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}

	blob, err := base64.StdEncoding.DecodeString(armored)
	if err != nil {
		return models.ResourceMetadata{}, fmt.Errorf("%w: decode base64: %w", ErrBadCiphertext, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return models.ResourceMetadata{}, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return models.ResourceMetadata{}, fmt.Errorf("%w: ciphertext too short", ErrBadCiphertext)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An auth-tag failure here almost always means the record was
	// re-encrypted under a rotated key the client has not received.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.ResourceMetadata{}, fmt.Errorf("decrypt metadata: %w", err)
	}

	var doc models.ResourceMetadata
	if err = json.Unmarshal(plaintext, &doc); err != nil {
		return models.ResourceMetadata{}, fmt.Errorf("unmarshal metadata document: %w", err)
	}

	return doc, nil
}

// Encrypt is the inverse of Decrypt: it marshals doc to JSON, seals it
// with the identified key, and returns the Base64 armor. Used by the
// upload path and by tests building wire fixtures.
func (k *metadataKeyring) Encrypt(doc models.ResourceMetadata, keyID uuid.UUID, keyType models.MetadataKeyType) (string, error) {
	key, ok := k.lookup(keyID, keyType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}

	plaintext, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal metadata document: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *metadataKeyring) lookup(keyID uuid.UUID, keyType models.MetadataKeyType) ([]byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if keyType == models.MetadataKeyShared {
		key, ok := k.shared[keyID]
		return key, ok
	}
	key, ok := k.user[keyID]
	return key, ok
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
