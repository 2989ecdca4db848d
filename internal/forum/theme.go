package forum

import (
	"context"
	"errors"
	"fmt"

	"forumhub/internal/model"
)

// ThemeRepository persists the colour scheme. The value is stored as the
// raw string "light" or "dark", not as JSON.
type ThemeRepository struct {
	store  Store
	logger Logger
}

func NewThemeRepository(store Store, logger Logger) *ThemeRepository {
	return &ThemeRepository{store: store, logger: logger}
}

// Get returns the stored theme, or light if none has been set.
// An unrecognised stored value is reported as corrupt.
func (r *ThemeRepository) Get(ctx context.Context) (model.Theme, error) {
	data, err := r.store.Get(ctx, KeyTheme)
	if errors.Is(err, ErrKeyNotFound) {
		return model.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", KeyTheme, err)
	}

	t := model.Theme(data)
	if t != model.ThemeLight && t != model.ThemeDark {
		return "", &CorruptDataError{Key: KeyTheme, Err: fmt.Errorf("unknown theme %q", data)}
	}
	return t, nil
}

// Set stores t, which must be light or dark.
func (r *ThemeRepository) Set(ctx context.Context, t model.Theme) error {
	if t != model.ThemeLight && t != model.ThemeDark {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	if err := r.store.Put(ctx, KeyTheme, []byte(t)); err != nil {
		return fmt.Errorf("writing %s: %w", KeyTheme, err)
	}
	r.logger.Info("theme set", "theme", string(t))
	return nil
}

// Toggle switches between light and dark and returns the new theme.
func (r *ThemeRepository) Toggle(ctx context.Context) (model.Theme, error) {
	t, err := r.Get(ctx)
	if err != nil {
		return "", err
	}
	next := model.ThemeDark
	if t == model.ThemeDark {
		next = model.ThemeLight
	}
	if err := r.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
