package tagging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"forumhub/internal/config"
	"forumhub/internal/forum"
)

// fakeCompleter returns queued replies and records prompts.
type fakeCompleter struct {
	replies []string
	errs    []error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.prompts = append(f.prompts, prompt)
	i := len(f.prompts) - 1
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", nil
}

func apiError(status int) *anthropic.Error {
	return &anthropic.Error{
		StatusCode: status,
		Request:    httptest.NewRequest(http.MethodPost, "/v1/messages", nil),
		Response:   &http.Response{StatusCode: status, Status: http.StatusText(status)},
	}
}

func newTestService(c Completer, retries int) *Service {
	return NewService(c, forum.NewNopLogger(), Options{
		MaxRetries:     retries,
		InitialBackoff: time.Millisecond,
	})
}

func TestService_SuggestTags(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"react, hooks , state"}}
	s := newTestService(fc, 0)

	got := s.SuggestTags(context.Background(), "Hooks question", "How do I use useEffect?")
	want := []string{"react", "hooks", "state"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SuggestTags = %q, want %q", got, want)
	}

	if len(fc.prompts) != 1 {
		t.Fatalf("prompts = %d, want 1", len(fc.prompts))
	}
	p := fc.prompts[0]
	if !strings.Contains(p, `Title: "Hooks question"`) || !strings.Contains(p, "separated by commas") {
		t.Errorf("unexpected prompt: %s", p)
	}
}

func TestService_SuggestTagsTruncatesContent(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"go"}}
	s := newTestService(fc, 0)

	body := strings.Repeat("a", 290) + strings.Repeat("b", 50)
	s.SuggestTags(context.Background(), "t", body)

	if strings.Contains(fc.prompts[0], "bbbbbbbbbbb") {
		t.Error("prompt should contain only the first 300 characters of content")
	}
	if !strings.Contains(fc.prompts[0], strings.Repeat("a", 290)+strings.Repeat("b", 10)) {
		t.Error("prompt should contain the first 300 characters of content")
	}
}

func TestService_SuggestTagsFailure(t *testing.T) {
	fc := &fakeCompleter{errs: []error{errors.New("boom")}}
	s := newTestService(fc, 3)

	got := s.SuggestTags(context.Background(), "t", "c")
	if got == nil || len(got) != 0 {
		t.Errorf("SuggestTags = %#v, want empty", got)
	}
	if len(fc.prompts) != 1 {
		t.Errorf("non-retriable error attempted %d times, want 1", len(fc.prompts))
	}
}

func TestService_RetriesRetriableErrors(t *testing.T) {
	rateLimited := apiError(http.StatusTooManyRequests)
	fc := &fakeCompleter{
		errs:    []error{rateLimited, rateLimited, nil},
		replies: []string{"", "", "go, testing"},
	}
	s := newTestService(fc, 2)

	got := s.SuggestTags(context.Background(), "t", "c")
	if strings.Join(got, ",") != "go,testing" {
		t.Errorf("SuggestTags = %q, want [go testing]", got)
	}
	if len(fc.prompts) != 3 {
		t.Errorf("attempts = %d, want 3", len(fc.prompts))
	}
}

func TestService_RetriesExhausted(t *testing.T) {
	unavailable := apiError(http.StatusServiceUnavailable)
	fc := &fakeCompleter{errs: []error{unavailable, unavailable, unavailable}}
	s := newTestService(fc, 1)

	res := s.SearchCommunity(context.Background(), "q")
	if res.Text != FailedText {
		t.Errorf("Text = %q, want %q", res.Text, FailedText)
	}
	if len(fc.prompts) != 2 {
		t.Errorf("attempts = %d, want 2", len(fc.prompts))
	}
}

func TestService_BudgetBoundsRetries(t *testing.T) {
	unavailable := apiError(http.StatusServiceUnavailable)
	errs := make([]error, 1000)
	for i := range errs {
		errs[i] = unavailable
	}
	fc := &fakeCompleter{errs: errs}
	s := NewService(fc, forum.NewNopLogger(), Options{
		Timeout:        time.Second,
		Budget:         100 * time.Millisecond,
		MaxRetries:     len(errs),
		InitialBackoff: 20 * time.Millisecond,
	})

	start := time.Now()
	res := s.SearchCommunity(context.Background(), "q")
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call took %v, want it cut off near the 100ms budget", elapsed)
	}
	if res.Text != FailedText {
		t.Errorf("Text = %q, want %q", res.Text, FailedText)
	}
}

func TestService_SearchCommunity(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"answer", "Goroutines are lightweight threads.", "Goroutines are lightweight threads."},
		{"empty answer", "", NoResultsText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{replies: []string{tt.reply}}
			s := newTestService(fc, 0)

			res := s.SearchCommunity(context.Background(), "goroutines")
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
			if res.Sources == nil {
				t.Error("Sources should be non-nil")
			}
			if !strings.Contains(fc.prompts[0], "related to: goroutines.") {
				t.Errorf("unexpected prompt: %s", fc.prompts[0])
			}
		})
	}
}

func TestService_CancelledContext(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"go"}}
	s := newTestService(fc, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := s.SuggestTags(ctx, "t", "c"); len(got) != 0 {
		t.Errorf("SuggestTags = %q, want empty", got)
	}
}

func TestNewTaggerFromConfig(t *testing.T) {
	logger := forum.NewNopLogger()

	tests := []struct {
		name     string
		provider string
		key      string
		wantAI   bool
	}{
		{"none", "none", "sk-test", false},
		{"empty provider", "", "sk-test", false},
		{"anthropic without key", "anthropic", "", false},
		{"anthropic", "anthropic", "sk-test", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.AIConfig{Provider: tt.provider, RequestsPerMinute: 10, TimeoutSeconds: 5}
			tagger := NewTaggerFromConfig(cfg, tt.key, logger)
			_, isService := tagger.(*Service)
			if isService != tt.wantAI {
				t.Errorf("got %T, want service=%v", tagger, tt.wantAI)
			}
		})
	}
}

func TestDefaultModel(t *testing.T) {
	t.Setenv("FORUMHUB_AI_MODEL", "")
	if got := DefaultModel(); got != ModelHaiku {
		t.Errorf("DefaultModel() = %q, want %q", got, ModelHaiku)
	}

	t.Setenv("FORUMHUB_AI_MODEL", "claude-sonnet-4-5-20250929")
	if got := DefaultModel(); got != "claude-sonnet-4-5-20250929" {
		t.Errorf("DefaultModel() = %q, want override", got)
	}
}
