package tagging

import (
	"context"
	"strings"

	"forumhub/internal/forum"
)

// Placeholder texts returned by SearchCommunity when no answer is available.
const (
	NotConfiguredText = "AI service not configured."
	FailedText        = "Failed to fetch AI results."
	NoResultsText     = "No results found."
)

// ParseTags splits a comma separated model reply into tags.
// Surrounding whitespace, quotes and leading '#' are dropped, as are empties.
func ParseTags(reply string) []string {
	tags := []string{}
	for _, part := range strings.Split(reply, ",") {
		t := strings.TrimSpace(part)
		t = strings.Trim(t, "\"'`")
		t = strings.TrimPrefix(t, "#")
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// MergeTags appends suggested tags not already present in existing.
// Both lists are normalized first; order is kept.
func MergeTags(existing, suggested []string) []string {
	return forum.NormalizeTags(append(append([]string{}, existing...), suggested...))
}

// Unconfigured is the Tagger used when no AI provider is set up.
type Unconfigured struct{}

func (Unconfigured) SuggestTags(ctx context.Context, title, content string) []string {
	return []string{}
}

func (Unconfigured) SearchCommunity(ctx context.Context, query string) forum.SearchResult {
	return forum.SearchResult{Text: NotConfiguredText, Sources: []forum.Source{}}
}

var _ forum.Tagger = Unconfigured{}
