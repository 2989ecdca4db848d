package forum

import "context"

// SearchResult is the answer to a community search.
type SearchResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Source is a web reference backing a search answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Tagger is the optional AI collaborator. Implementations never fail:
// an unconfigured or failing service degrades to empty suggestions and a
// placeholder search text.
type Tagger interface {
	SuggestTags(ctx context.Context, title, content string) []string
	SearchCommunity(ctx context.Context, query string) SearchResult
}
