package forum

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when an operation references a post id
	// that is not in the store.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound is returned by AddReply when the parent comment id
	// does not occur anywhere in the post's comment tree.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEmptyBody is returned when a comment or reply has no text.
	ErrEmptyBody = errors.New("body must not be empty")

	// ErrInvalidTheme is returned when a theme other than light or dark is set.
	ErrInvalidTheme = errors.New("theme must be light or dark")
)

// CorruptDataError reports a stored value that could not be decoded.
// The stored value is left in place; the caller decides how to recover.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data under key %q: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }
