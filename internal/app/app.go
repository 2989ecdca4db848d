package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"forumhub/internal/config"
	"forumhub/internal/encryption"
	"forumhub/internal/forum"
	"forumhub/internal/kv"
	"forumhub/internal/server"
	"forumhub/internal/tagging"
)

// PassphraseFunc supplies the passphrase that unlocks the private key.
type PassphraseFunc func() (string, error)

// Options carries what NewForumApp takes from outside the config file.
type Options struct {
	Credentials  kv.Credentials
	AnthropicKey string
	// Passphrase is consulted only when age encryption is configured.
	// A nil func leaves the store locked: writes succeed, reads fail.
	Passphrase PassphraseFunc
	Verbose    bool
}

// ForumApp is the application layer between the CLI and the repositories.
// It constructs all dependencies from config and closes the store and log
// file on Close.
type ForumApp struct {
	cfg     *config.Config
	store   forum.Store
	logger  forum.Logger
	op      *Operation
	logFile *os.File

	posts         *forum.PostRepository
	notifications *forum.NotificationRepository
	users         *forum.UserRepository
	badges        *forum.BadgeRepository
	theme         *forum.ThemeRepository
	tagger        forum.Tagger
}

// NewForumApp creates a fully wired ForumApp from the given config.
// operation identifies the CLI command being run (e.g. "post create", "serve").
// The caller must call Close when done.
func NewForumApp(ctx context.Context, cfg *config.Config, operation string, opts Options) (*ForumApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	op := NewOperation(operation, time.Now())
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	sl, logFile, err := newLogger(cfg.LogDir, op.ID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: sl.With("op", op.Name)}

	store, err := openStore(ctx, cfg, opts)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	idgen := forum.UUIDGenerator{}
	a := &ForumApp{
		cfg:           cfg,
		store:         store,
		logger:        logger,
		op:            op,
		logFile:       logFile,
		posts:         forum.NewPostRepository(store, logger, forum.RealClock{}, idgen),
		notifications: forum.NewNotificationRepository(store, logger, idgen),
		users:         forum.NewUserRepository(store, logger),
		badges:        forum.NewBadgeRepository(store),
		theme:         forum.NewThemeRepository(store, logger),
		tagger:        tagging.NewTaggerFromConfig(cfg.AI, opts.AnthropicKey, logger),
	}
	logger.Debug("app ready", "store", cfg.Store.Type, "encryption", cfg.Encryption.Type, "ai", cfg.AI.Provider)
	return a, nil
}

// openStore builds the configured backend and, when encryption is enabled,
// wraps it so values are sealed at rest.
func openStore(ctx context.Context, cfg *config.Config, opts Options) (forum.Store, error) {
	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}
	if enc != nil && !enc.IsConfigured() {
		return nil, fmt.Errorf("encryption keys not found: run 'forumhub config init' to generate them")
	}

	store, err := kv.NewStoreFromConfig(ctx, cfg.Store, opts.Credentials)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	if enc == nil {
		return store, nil
	}

	var dc forum.DecryptionContext
	if opts.Passphrase != nil {
		passphrase, err := opts.Passphrase()
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		dc, err = enc.Unlock(passphrase)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("unlocking store: %w", err)
		}
	}
	return kv.NewEncryptedStore(store, enc, dc), nil
}

// SetupEncryption generates the key pair for the configured encryptor.
// It is a no-op when encryption is disabled.
func SetupEncryption(cfg *config.Config, passphrase string) error {
	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		return fmt.Errorf("creating encryptor: %w", err)
	}
	if enc == nil {
		return nil
	}
	if enc.IsConfigured() {
		return fmt.Errorf("encryption keys already exist at %s", cfg.Encryption.PrivateKeyPath)
	}
	if err := enc.Setup(passphrase); err != nil {
		return fmt.Errorf("generating encryption keys: %w", err)
	}
	return nil
}

// InitConfig writes cfg to path as a fresh config. With age encryption the
// key pair is generated first, so a failure leaves neither a config that
// points at missing keys nor keys without a config.
func InitConfig(path string, cfg *config.Config, passphrase PassphraseFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	withKeys := cfg.Encryption.Type == "age"
	if withKeys {
		if passphrase == nil {
			return fmt.Errorf("age encryption needs a passphrase")
		}
		p, err := passphrase()
		if err != nil {
			return fmt.Errorf("reading passphrase: %w", err)
		}
		if err := SetupEncryption(cfg, p); err != nil {
			return err
		}
	}

	if err := config.Init(path, cfg); err != nil {
		if withKeys {
			os.Remove(cfg.Encryption.PublicKeyPath)
			os.Remove(cfg.Encryption.PrivateKeyPath)
		}
		return err
	}
	return nil
}

func (a *ForumApp) Posts() *forum.PostRepository                 { return a.posts }
func (a *ForumApp) Notifications() *forum.NotificationRepository { return a.notifications }
func (a *ForumApp) Users() *forum.UserRepository                 { return a.users }
func (a *ForumApp) Badges() *forum.BadgeRepository               { return a.badges }
func (a *ForumApp) Theme() *forum.ThemeRepository                { return a.theme }
func (a *ForumApp) Tagger() forum.Tagger                         { return a.tagger }
func (a *ForumApp) Logger() forum.Logger                         { return a.logger }

// Session loads the current user into a session for authoring content.
func (a *ForumApp) Session(ctx context.Context) (*forum.Session, error) {
	return a.users.Session(ctx)
}

// Check validates the store backend is reachable and usable.
func (a *ForumApp) Check(ctx context.Context) error {
	return a.store.ValidateSetup(ctx)
}

// Server returns the HTTP API over this app's repositories.
func (a *ForumApp) Server() *server.Server {
	return server.New(server.Services{
		Store:         a.store,
		Posts:         a.posts,
		Notifications: a.notifications,
		Users:         a.users,
		Badges:        a.badges,
		Theme:         a.theme,
		Tagger:        a.tagger,
		Logger:        a.logger,
	}, a.cfg.Server.AllowedOrigins)
}

// Addr is the configured listen address for the HTTP API.
func (a *ForumApp) Addr() string {
	return a.cfg.Server.Addr
}

// Fail marks the running operation as failed; Close logs the outcome.
func (a *ForumApp) Fail(err error) {
	a.op.Fail()
	a.logger.Error("operation failed", "error", err)
}

// Close logs the operation outcome and closes the store and log file.
func (a *ForumApp) Close() error {
	a.logger.Debug("operation finished", "status", a.op.Status, "duration", a.op.Duration(time.Now()))

	var errs []error
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing store: %w", err))
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
