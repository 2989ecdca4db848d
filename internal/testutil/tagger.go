package testutil

import (
	"context"

	"forumhub/internal/forum"
)

// StubTagger returns canned AI output and records the queries it saw.
type StubTagger struct {
	Tags    []string
	Result  forum.SearchResult
	Queries []string
}

func (s *StubTagger) SuggestTags(ctx context.Context, title, content string) []string {
	s.Queries = append(s.Queries, title)
	if s.Tags == nil {
		return []string{}
	}
	return s.Tags
}

func (s *StubTagger) SearchCommunity(ctx context.Context, query string) forum.SearchResult {
	s.Queries = append(s.Queries, query)
	return s.Result
}

var _ forum.Tagger = (*StubTagger)(nil)
