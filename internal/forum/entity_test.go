package forum_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"forumhub/internal/forum"
	"forumhub/internal/testutil"
)

func TestLoad_SeedsMissingKey(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore()
	seed := []string{"a", "b"}

	got, err := forum.Load(ctx, store, forum.KeyBookmarks, seed)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load() = %v, want seed", got)
	}
	if raw := testutil.GetRaw(t, store, forum.KeyBookmarks); raw != `["a","b"]` {
		t.Errorf("persisted seed = %s", raw)
	}

	got[0] = "changed"
	if seed[0] != "a" {
		t.Error("Load() result aliases the seed")
	}
}

func TestLoad_ExistingValueWinsOverSeed(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore()
	testutil.PutRaw(t, store, forum.KeyBookmarks, `["x"]`)

	got, err := forum.Load(ctx, store, forum.KeyBookmarks, []string{"seed"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("Load() = %v, want stored value", got)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	store := testutil.NewTestStore()
	testutil.PutRaw(t, store, forum.KeyBookmarks, `[1, 2`)

	_, err := forum.Load(context.Background(), store, forum.KeyBookmarks, []string{})
	var corrupt *forum.CorruptDataError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Load() error = %v, want *CorruptDataError", err)
	}
	var syntax *json.SyntaxError
	if !errors.As(err, &syntax) {
		t.Errorf("CorruptDataError should unwrap to the JSON error, got %v", corrupt.Err)
	}
}

func TestLoad_WrongShapeIsCorrupt(t *testing.T) {
	store := testutil.NewTestStore()
	testutil.PutRaw(t, store, forum.KeyBookmarks, `{"id":"1"}`)

	var corrupt *forum.CorruptDataError
	if _, err := forum.Load(context.Background(), store, forum.KeyBookmarks, []string{}); !errors.As(err, &corrupt) {
		t.Errorf("Load() error = %v, want *CorruptDataError", err)
	}
}

func TestLoad_StoreErrors(t *testing.T) {
	ctx := context.Background()
	fs := testutil.NewFailingStore(testutil.NewTestStore())

	fs.FailGet = true
	if _, err := forum.Load(ctx, fs, forum.KeyPosts, []string{}); !errors.Is(err, testutil.ErrStoreFailure) {
		t.Errorf("Load() with failing Get error = %v", err)
	}

	fs.FailGet = false
	fs.FailPut = true
	if _, err := forum.Load(ctx, fs, forum.KeyPosts, []string{}); !errors.Is(err, testutil.ErrStoreFailure) {
		t.Errorf("Load() with failing seed Put error = %v", err)
	}
}

func TestSave_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore()

	if err := forum.Save(ctx, store, forum.KeyBookmarks, []string{"1"}); err != nil {
		t.Fatal(err)
	}
	if err := forum.Save(ctx, store, forum.KeyBookmarks, []string{"2", "3"}); err != nil {
		t.Fatal(err)
	}
	if raw := testutil.GetRaw(t, store, forum.KeyBookmarks); raw != `["2","3"]` {
		t.Errorf("stored = %s", raw)
	}
}
