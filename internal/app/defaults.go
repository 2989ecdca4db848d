package app

import (
	"fmt"
	"os"
	"path/filepath"

	"forumhub/internal/kv"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - FORUMHUB_CONFIG_PATH: config file location (default: ~/.config/forumhub.toml)
//   - FORUMHUB_HOME: base directory for forumhub data (default: ~/.local/share/forumhub)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking FORUMHUB_CONFIG_PATH env var first,
// then falling back to the default ~/.config/forumhub.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("FORUMHUB_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "forumhub.toml"), nil
}

// getBaseDir returns the base directory for forumhub data, checking FORUMHUB_HOME env var first,
// then falling back to the XDG default ~/.local/share/forumhub.
func getBaseDir() (string, error) {
	if path := os.Getenv("FORUMHUB_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "forumhub"), nil
}

// CredentialsFromEnv collects store secrets from DATABASE_URL,
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func CredentialsFromEnv() kv.Credentials {
	return kv.Credentials{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		S3AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// AnthropicAPIKey returns ANTHROPIC_API_KEY, or "" when unset.
func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}
