package forum

import (
	"context"
	"errors"
)

// Storage keys. The layout matches the one the browser client used, so a
// dump of its local storage can be loaded into any backend unchanged.
const (
	KeyPosts         = "forumhub_posts"
	KeyBookmarks     = "forumhub_bookmarks"
	KeyCurrentUser   = "forumhub_current_user"
	KeyNotifications = "forumhub_notifications"
	KeyUsers         = "forumhub_users"
	KeyBadges        = "forumhub_badges"
	KeyTheme         = "theme"
)

// ErrKeyNotFound is returned by Store.Get when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a string-keyed persistence layer holding opaque values.
// A Put replaces the whole value; there is no merge and no transaction
// across keys, so concurrent writers to the same key resolve last-write-wins.
// Implementations must be safe for concurrent use of individual calls.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// ValidateSetup verifies that the backend is reachable and usable.
	ValidateSetup(ctx context.Context) error

	// Close releases any resources held by the backend.
	Close() error
}
