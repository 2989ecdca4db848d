package forum

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"forumhub/internal/model"
)

// Feed names an ordering of the post list.
type Feed string

const (
	FeedHome      Feed = ""          // store order
	FeedTrending  Feed = "trending"  // most upvoted first
	FeedNew       Feed = "new"       // most recently created first
	FeedBookmarks Feed = "bookmarks" // bookmarked posts, store order
)

// FilterPosts keeps posts whose title, body, tags or author name contain
// query, ignoring case. A blank query keeps everything.
func FilterPosts(posts []model.Post, query string) []model.Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	return slices.DeleteFunc(slices.Clone(posts), func(p model.Post) bool {
		return !postMatches(p, q)
	})
}

func postMatches(p model.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q) ||
		strings.Contains(strings.ToLower(p.Author.Name), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// FilterByCategory keeps posts in the named category. Empty or "All" keeps
// everything.
func FilterByCategory(posts []model.Post, category string) []model.Post {
	if category == "" || category == "All" {
		return posts
	}
	return slices.DeleteFunc(slices.Clone(posts), func(p model.Post) bool {
		return !strings.EqualFold(string(p.Category), category)
	})
}

// SortPosts returns a copy of posts ordered for feed. Unknown feeds keep
// store order.
func SortPosts(posts []model.Post, feed Feed) []model.Post {
	out := slices.Clone(posts)
	switch feed {
	case FeedTrending:
		slices.SortStableFunc(out, func(a, b model.Post) int {
			return cmp.Compare(b.Upvotes, a.Upvotes)
		})
	case FeedNew:
		slices.SortStableFunc(out, func(a, b model.Post) int {
			return compareIDs(b.ID, a.ID)
		})
	}
	return out
}

// compareIDs orders numeric ids by value and anything else lexically.
func compareIDs(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(x, y)
	}
	return cmp.Compare(a, b)
}
