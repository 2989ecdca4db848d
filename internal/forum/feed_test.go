package forum_test

import (
	"slices"
	"testing"

	"forumhub/internal/forum"
	"forumhub/internal/model"
)

func samplePosts() []model.Post {
	return []model.Post{
		{ID: "1705314600000", Title: "Go generics", Body: "type params", Upvotes: 3, Category: model.CategoryEngineering, Tags: []string{"go"}, Author: model.User{Name: "Sarah Chen"}},
		{ID: "1", Title: "Bento grids", Body: "layouts", Upvotes: 10, Category: model.CategoryDesign, Tags: []string{"ui-ux"}, Author: model.User{Name: "Alex Rivera"}},
		{ID: "2", Title: "Profiling", Body: "pprof flame graphs", Upvotes: 10, Category: model.CategoryPerformance, Tags: []string{"go", "perf"}, Author: model.User{Name: "Marcus"}},
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFilterPosts(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1705314600000", "1", "2"}},
		{"GENERICS", []string{"1705314600000"}},
		{"flame", []string{"2"}},
		{"ui-ux", []string{"1"}},
		{"go", []string{"1705314600000", "2"}},
		{"alex", []string{"1"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ids(forum.FilterPosts(samplePosts(), tt.query)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterPosts(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterPosts_DoesNotModifyInput(t *testing.T) {
	posts := samplePosts()
	forum.FilterPosts(posts, "flame")
	if !slices.Equal(ids(posts), []string{"1705314600000", "1", "2"}) {
		t.Errorf("input reordered: %v", ids(posts))
	}
}

func TestFilterByCategory(t *testing.T) {
	if got := ids(forum.FilterByCategory(samplePosts(), "design")); !slices.Equal(got, []string{"1"}) {
		t.Errorf("FilterByCategory(design) = %v", got)
	}
	if got := forum.FilterByCategory(samplePosts(), "All"); len(got) != 3 {
		t.Errorf("FilterByCategory(All) kept %d", len(got))
	}
}

func TestSortPosts(t *testing.T) {
	tests := []struct {
		feed forum.Feed
		want []string
	}{
		{forum.FeedHome, []string{"1705314600000", "1", "2"}},
		{forum.FeedTrending, []string{"1", "2", "1705314600000"}}, // ties keep store order
		{forum.FeedNew, []string{"1705314600000", "2", "1"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.feed), func(t *testing.T) {
			if got := ids(forum.SortPosts(samplePosts(), tt.feed)); !slices.Equal(got, tt.want) {
				t.Errorf("SortPosts(%q) = %v, want %v", tt.feed, got, tt.want)
			}
		})
	}
}
