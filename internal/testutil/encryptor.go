package testutil

import (
	"forumhub/internal/encryption"
	"forumhub/internal/forum"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() forum.Encryptor {
	return encryption.NewTestEncryptor()
}
