package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"forumhub/internal/app"
	"forumhub/internal/config"
)

func main() {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

var verbose bool

// newApp reads the config and creates a ForumApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "post create", "serve").
func newApp(ctx context.Context, operation string) (*app.ForumApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewForumApp(ctx, cfg, operation, app.Options{
		Credentials:  app.CredentialsFromEnv(),
		AnthropicKey: app.AnthropicAPIKey(),
		Passphrase:   passphraseSource(),
		Verbose:      verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

// withApp wraps a command body that needs a ForumApp.
func withApp(operation string, fn func(cmd *cobra.Command, a *app.ForumApp, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), operation)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := fn(cmd, a, args); err != nil {
			a.Fail(err)
			return err
		}
		return nil
	}
}

// passphraseSource reads FORUMHUB_PASSPHRASE, or prompts when stdin is a
// terminal. With neither, the store stays locked.
func passphraseSource() app.PassphraseFunc {
	if p, ok := os.LookupEnv("FORUMHUB_PASSPHRASE"); ok {
		return func() (string, error) { return p, nil }
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	return func() (string, error) { return promptPassword("Passphrase: ") }
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// newPassphrase asks for a passphrase twice and requires both to match.
func newPassphrase() (string, error) {
	if p := os.Getenv("FORUMHUB_PASSPHRASE"); p != "" {
		return p, nil
	}
	first, err := promptPassword("New passphrase: ")
	if err != nil {
		return "", err
	}
	second, err := promptPassword("Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passphrases do not match")
	}
	if first == "" {
		return "", errors.New("passphrase must not be empty")
	}
	return first, nil
}

var rootCmd = &cobra.Command{
	Use:          "forumhub",
	Short:        "Developer community forum",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		encType, _ := cmd.Flags().GetString("encryption")
		storeType, _ := cmd.Flags().GetString("store")
		cfg.Encryption.Type = encType
		if storeType == "sqlite" {
			cfg.Store = config.StoreConfig{Type: "sqlite", SQLitePath: filepath.Join(defaults["base_dir"], "forumhub.db")}
		} else if storeType != "filesystem" {
			cfg.Store.Type = storeType
		}

		if err := app.InitConfig(defaults["config_path"], cfg, newPassphrase); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if encType == "age" {
			fmt.Printf("Encryption keys written to %s\n", cfg.Encryption.PublicKeyPath)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Store:      %s\n", cfg.Store.Type)
		fmt.Printf("Encryption: %s\n", cfg.Encryption.Type)
		fmt.Printf("AI:         %s\n", cfg.AI.Provider)
		fmt.Printf("Server:     %s\n", cfg.Server.Addr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	configInitCmd.Flags().String("encryption", "none", "At-rest encryption: none or age")
	configInitCmd.Flags().String("store", "filesystem", "Store backend: memory, filesystem, sqlite or postgres")

	rootCmd.AddCommand(configCmd)
}
