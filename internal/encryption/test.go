package encryption

import (
	"bytes"
	"fmt"

	"forumhub/internal/forum"
)

// testHeader marks values sealed by TestEncryptor so they differ from
// plaintext while staying deterministic.
var testHeader = []byte("FHENC\x00\x00\x00")

// TestEncryptor is a deterministic encryptor for tests. Seal prepends an
// 8-byte header and Open strips it; no cryptography is involved.
type TestEncryptor struct {
	setupCalled bool
}

var _ forum.Encryptor = (*TestEncryptor)(nil)

func NewTestEncryptor() *TestEncryptor {
	return &TestEncryptor{}
}

func (e *TestEncryptor) Setup(passphrase string) error {
	e.setupCalled = true
	return nil
}

func (e *TestEncryptor) Seal(plaintext []byte) ([]byte, error) {
	out := make([]byte, 0, len(testHeader)+len(plaintext))
	out = append(out, testHeader...)
	return append(out, plaintext...), nil
}

func (e *TestEncryptor) Unlock(passphrase string) (forum.DecryptionContext, error) {
	return &TestDecryptionContext{}, nil
}

func (e *TestEncryptor) IsConfigured() bool {
	return true
}

// TestDecryptionContext strips the header added by TestEncryptor.
type TestDecryptionContext struct{}

var _ forum.DecryptionContext = (*TestDecryptionContext)(nil)

func (c *TestDecryptionContext) Open(ciphertext []byte) ([]byte, error) {
	if !bytes.HasPrefix(ciphertext, testHeader) {
		return nil, fmt.Errorf("invalid test encryption header")
	}
	return bytes.Clone(ciphertext[len(testHeader):]), nil
}
