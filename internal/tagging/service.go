package tagging

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"forumhub/internal/forum"
)

// contentLimit bounds how many characters of a post body are sent for tag suggestion.
const contentLimit = 300

// DefaultBudget caps one SuggestTags or SearchCommunity call, retries and
// backoff included. It stays below the HTTP server's write timeout.
const DefaultBudget = 20 * time.Second

// Options tunes Service.
type Options struct {
	RequestsPerMinute int           // 0 disables rate limiting
	Timeout           time.Duration // per attempt; defaults to 15s
	Budget            time.Duration // whole call; defaults to DefaultBudget
	MaxRetries        int
	InitialBackoff    time.Duration // defaults to 1s
	MaxConcurrent     int64         // defaults to 2
}

// Service is the AI collaborator backed by a Completer. It never returns
// errors: failures are logged and replaced by empty output.
type Service struct {
	completer Completer
	logger    forum.Logger
	limiter   *rate.Limiter
	sem       *semaphore.Weighted
	opts      Options
}

func NewService(completer Completer, logger forum.Logger, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = time.Second
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60), 1)
	}

	return &Service{
		completer: completer,
		logger:    logger,
		limiter:   limiter,
		sem:       semaphore.NewWeighted(opts.MaxConcurrent),
		opts:      opts,
	}
}

// SuggestTags asks for 3-5 tags for a post.
func (s *Service) SuggestTags(ctx context.Context, title, content string) []string {
	if r := []rune(content); len(r) > contentLimit {
		content = string(r[:contentLimit])
	}
	prompt := fmt.Sprintf("Suggest 3-5 relevant technical tags for a forum post with Title: %q and Content: %q. "+
		"Return only the tag names separated by commas.", title, content)

	reply, err := s.complete(ctx, "suggest tags", prompt, 256)
	if err != nil {
		s.logger.Warn("tag suggestion failed", "error", err)
		return []string{}
	}
	return ParseTags(reply)
}

// SearchCommunity asks for a short summary about query.
func (s *Service) SearchCommunity(ctx context.Context, query string) forum.SearchResult {
	prompt := fmt.Sprintf("Search for information related to: %s. "+
		"Provide a concise summary for a developer forum community.", query)

	reply, err := s.complete(ctx, "search community", prompt, 1024)
	if err != nil {
		s.logger.Warn("community search failed", "error", err)
		return forum.SearchResult{Text: FailedText, Sources: []forum.Source{}}
	}
	if reply == "" {
		reply = NoResultsText
	}
	return forum.SearchResult{Text: reply, Sources: []forum.Source{}}
}

// complete runs one prompt through the limiter and retries retriable
// failures with exponential backoff, all within the call budget.
func (s *Service) complete(ctx context.Context, operation, prompt string, maxTokens int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Budget)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquiring slot for %s: %w", operation, err)
	}
	defer s.sem.Release(1)

	backoff := s.opts.InitialBackoff
	for attempt := 0; ; attempt++ {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return "", fmt.Errorf("%s rate limited: %w", operation, err)
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
		reply, err := s.completer.Complete(attemptCtx, prompt, maxTokens)
		cancel()
		if err == nil {
			if attempt > 0 {
				s.logger.Info("ai call succeeded after retries", "operation", operation, "retries", attempt)
			}
			return reply, nil
		}

		if !isRetriable(err) || attempt >= s.opts.MaxRetries {
			return "", fmt.Errorf("%s failed: %w", operation, err)
		}

		s.logger.Debug("ai call failed, retrying", "operation", operation, "attempt", attempt+1, "backoff", backoff, "error", err)
		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return "", fmt.Errorf("%s failed: %w", operation, ctx.Err())
		}
	}
}

var _ forum.Tagger = (*Service)(nil)
