package kv

import (
	"context"
	"fmt"

	"forumhub/internal/config"
	"forumhub/internal/forum"
)

// NewStoreFromConfig creates a forum.Store implementation based on the store
// config type. Credentials are passed separately so they never live in the
// config file.
func NewStoreFromConfig(ctx context.Context, cfg config.StoreConfig, creds Credentials) (forum.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.FSRoot == "" {
			return nil, fmt.Errorf("filesystem store requires fs_root to be set")
		}
		return NewFileSystemStore(cfg.FSRoot)
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite store requires sqlite_path to be set")
		}
		return NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		url := cfg.PostgresURL
		if url == "" {
			url = creds.DatabaseURL
		}
		if url == "" {
			return nil, fmt.Errorf("postgres store requires postgres_url or DATABASE_URL")
		}
		return NewPostgresStore(ctx, url)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 store requires s3_bucket to be set")
		}
		client, err := NewS3Client(ctx, S3Options{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     creds.S3AccessKeyID,
			SecretAccessKey: creds.S3SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}

// Credentials holds secrets read from the environment.
type Credentials struct {
	DatabaseURL       string
	S3AccessKeyID     string
	S3SecretAccessKey string
}
