package forum

// Encryptor seals stored values at rest. Sealing uses the public key only;
// opening needs the private key, which Unlock recovers with a passphrase.
type Encryptor interface {
	// Setup performs one-time key generation. Called during `forumhub config init`.
	Setup(passphrase string) error

	// Seal returns ciphertext for plaintext.
	Seal(plaintext []byte) ([]byte, error)

	// Unlock decrypts the private key using the passphrase and returns a
	// DecryptionContext. Returns an error if the passphrase is incorrect.
	Unlock(passphrase string) (DecryptionContext, error)

	// IsConfigured returns true if the keys exist.
	IsConfigured() bool
}

// DecryptionContext holds an unlocked private key in memory for the
// lifetime of the process. It is never written to disk.
type DecryptionContext interface {
	Open(ciphertext []byte) ([]byte, error)
}
