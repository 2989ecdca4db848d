package encryption

import (
	"fmt"

	"forumhub/internal/config"
	"forumhub/internal/forum"
)

// NewEncryptorFromConfig creates an Encryptor based on the configuration type.
// It returns nil for "none" (or empty): values are stored in plaintext.
func NewEncryptorFromConfig(cfg config.EncryptionConfig) (forum.Encryptor, error) {
	switch cfg.Type {
	case "none", "":
		return nil, nil
	case "age":
		return NewAgeEncryptor(cfg), nil
	case "test":
		return NewTestEncryptor(), nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
