package kv

import (
	"context"
	"errors"
	"fmt"

	"forumhub/internal/forum"
)

// ErrLocked is returned when reading through an EncryptedStore that has no
// unlocked private key.
var ErrLocked = errors.New("store is locked: passphrase required")

// EncryptedStore seals values before they reach the wrapped store and opens
// them on the way back. Writing only needs the public key, so a locked store
// can still accept Puts.
type EncryptedStore struct {
	inner forum.Store
	enc   forum.Encryptor
	dc    forum.DecryptionContext // nil while locked
}

func NewEncryptedStore(inner forum.Store, enc forum.Encryptor, dc forum.DecryptionContext) *EncryptedStore {
	return &EncryptedStore{inner: inner, enc: enc, dc: dc}
}

func (s *EncryptedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if s.dc == nil {
		return nil, ErrLocked
	}
	plaintext, err := s.dc.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("decrypting %s: %w", key, err)
	}
	return plaintext, nil
}

func (s *EncryptedStore) Put(ctx context.Context, key string, value []byte) error {
	sealed, err := s.enc.Seal(value)
	if err != nil {
		return fmt.Errorf("encrypting %s: %w", key, err)
	}
	return s.inner.Put(ctx, key, sealed)
}

func (s *EncryptedStore) ValidateSetup(ctx context.Context) error {
	if !s.enc.IsConfigured() {
		return fmt.Errorf("encryption keys not configured")
	}
	return s.inner.ValidateSetup(ctx)
}

func (s *EncryptedStore) Close() error {
	return s.inner.Close()
}

var _ forum.Store = (*EncryptedStore)(nil)
