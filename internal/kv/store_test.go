package kv

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"forumhub/internal/forum"
)

// runStoreContract exercises the behaviour every forum.Store must share.
func runStoreContract(t *testing.T, s forum.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "forumhub_missing")
		if !errors.Is(err, forum.ErrKeyNotFound) {
			t.Fatalf("Get() error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		want := []byte(`[{"id":"1"}]`)
		if err := s.Put(ctx, forum.KeyPosts, want); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get(ctx, forum.KeyPosts)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get() = %q, want %q", got, want)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		if err := s.Put(ctx, forum.KeyTheme, []byte("light")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Put(ctx, forum.KeyTheme, []byte("dark")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get(ctx, forum.KeyTheme)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "dark" {
			t.Errorf("Get() = %q, want %q", got, "dark")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if err := s.Put(ctx, forum.KeyBookmarks, []byte(`["1"]`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Put(ctx, forum.KeyNotifications, []byte(`[]`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get(ctx, forum.KeyBookmarks)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `["1"]` {
			t.Errorf("Get(bookmarks) = %q", got)
		}
	})

	t.Run("empty value", func(t *testing.T) {
		if err := s.Put(ctx, forum.KeyBadges, []byte{}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get(ctx, forum.KeyBadges)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Get() = %q, want empty", got)
		}
	})

	t.Run("validate setup", func(t *testing.T) {
		if err := s.ValidateSetup(ctx); err != nil {
			t.Errorf("ValidateSetup() error = %v", err)
		}
	})
}
