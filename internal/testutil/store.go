package testutil

import (
	"context"
	"errors"
	"testing"

	"forumhub/internal/forum"
	"forumhub/internal/kv"
)

// NewTestStore creates a new in-memory store.
func NewTestStore() *kv.MemoryStore {
	return kv.NewMemoryStore()
}

// PutRaw writes value under key, bypassing any encoding. Use it to plant
// corrupt or hand-written data.
func PutRaw(t *testing.T, s forum.Store, key, value string) {
	t.Helper()
	if err := s.Put(context.Background(), key, []byte(value)); err != nil {
		t.Fatalf("PutRaw(%s): %v", key, err)
	}
}

// GetRaw returns the bytes stored under key.
func GetRaw(t *testing.T, s forum.Store, key string) string {
	t.Helper()
	data, err := s.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("GetRaw(%s): %v", key, err)
	}
	return string(data)
}

// ErrStoreFailure is returned by FailingStore.
var ErrStoreFailure = errors.New("store failure")

// FailingStore wraps a store and fails reads or writes on demand.
type FailingStore struct {
	forum.Store
	FailGet bool
	FailPut bool
	Puts    int
}

func NewFailingStore(inner forum.Store) *FailingStore {
	return &FailingStore{Store: inner}
}

func (s *FailingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.FailGet {
		return nil, ErrStoreFailure
	}
	return s.Store.Get(ctx, key)
}

func (s *FailingStore) Put(ctx context.Context, key string, value []byte) error {
	s.Puts++
	if s.FailPut {
		return ErrStoreFailure
	}
	return s.Store.Put(ctx, key, value)
}

func (s *FailingStore) ValidateSetup(ctx context.Context) error {
	if s.FailGet {
		return ErrStoreFailure
	}
	return s.Store.ValidateSetup(ctx)
}

var _ forum.Store = (*FailingStore)(nil)
