package tagging

import (
	"time"

	"forumhub/internal/config"
	"forumhub/internal/forum"
)

// NewTaggerFromConfig returns the Anthropic-backed Service when the provider
// is anthropic and an API key is present, and Unconfigured otherwise.
func NewTaggerFromConfig(cfg config.AIConfig, apiKey string, logger forum.Logger) forum.Tagger {
	if cfg.Provider != "anthropic" {
		return Unconfigured{}
	}
	if apiKey == "" {
		logger.Warn("anthropic provider configured but ANTHROPIC_API_KEY is not set; AI features disabled")
		return Unconfigured{}
	}

	return NewService(NewAnthropicCompleter(apiKey, cfg.Model), logger, Options{
		RequestsPerMinute: cfg.RequestsPerMinute,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries:        2,
	})
}
