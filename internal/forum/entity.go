package forum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Load returns the value stored under key, decoded from JSON.
// If nothing is stored yet, seed is persisted and returned.
// A stored value that is not valid JSON for V yields a *CorruptDataError.
//
// Every call decodes a fresh copy, so callers never share state with each
// other or with the store.
func Load[V any](ctx context.Context, store Store, key string, seed V) (V, error) {
	var zero V

	data, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		data, err = json.Marshal(seed)
		if err != nil {
			return zero, fmt.Errorf("encoding seed for %s: %w", key, err)
		}
		if err := store.Put(ctx, key, data); err != nil {
			return zero, fmt.Errorf("seeding %s: %w", key, err)
		}
	case err != nil:
		return zero, fmt.Errorf("reading %s: %w", key, err)
	}

	// Decoding the seed bytes too keeps the caller's copy independent of seed.
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, &CorruptDataError{Key: key, Err: err}
	}
	return v, nil
}

// Save encodes value as JSON and overwrites whatever is stored under key.
func Save[V any](ctx context.Context, store Store, key string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
