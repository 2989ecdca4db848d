package forum

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"forumhub/internal/model"
)

// MaxTags is the most tags a new post may carry. It is checked where user
// input enters the system (API and CLI), not by the repository.
const MaxTags = 5

// JustNow is the display timestamp given to everything created locally.
const JustNow = "Just now"

// PostRepository reads and mutates the post collection, its comment trees
// and the bookmark list. Every call is a whole-collection read-modify-write.
type PostRepository struct {
	store  Store
	logger Logger
	clock  Clock
	idgen  IDGenerator
}

// NewPostRepository creates a PostRepository over store.
func NewPostRepository(store Store, logger Logger, clock Clock, idgen IDGenerator) *PostRepository {
	return &PostRepository{
		store:  store,
		logger: logger,
		clock:  clock,
		idgen:  idgen,
	}
}

// ListPosts returns every post in store order, newest first for posts
// created through CreatePost.
func (r *PostRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	return r.load(ctx)
}

// GetPostByID returns the post with the given id, or ErrPostNotFound.
func (r *PostRepository) GetPostByID(ctx context.Context, id string) (model.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return model.Post{}, err
	}
	i := indexOfPost(posts, id)
	if i < 0 {
		r.logger.Debug("post lookup missed", "post_id", id)
		return model.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	return posts[i], nil
}

// CreatePost builds a new post authored by the session user and prepends
// it to the collection.
// The id is the current Unix time in milliseconds, advanced one at a time
// until it collides with no stored post.
func (r *PostRepository) CreatePost(ctx context.Context, session *Session, title, body, category string, tags []string) (model.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return model.Post{}, err
	}

	ms := r.clock.Now().UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for indexOfPost(posts, id) >= 0 {
		ms++
		id = strconv.FormatInt(ms, 10)
	}

	post := model.Post{
		ID:            id,
		Title:         title,
		Body:          body,
		Author:        session.Author(),
		Category:      model.ParseCategory(category),
		Tags:          NormalizeTags(tags),
		Upvotes:       1,
		CommentsCount: 0,
		Timestamp:     JustNow,
		Thumbnail:     fmt.Sprintf("https://picsum.photos/seed/%s/320/180", id),
	}

	posts = append([]model.Post{post}, posts...)
	if err := r.save(ctx, posts); err != nil {
		return model.Post{}, err
	}

	r.logger.Info("post created", "post_id", post.ID, "category", string(post.Category), "tags", len(post.Tags))
	return post, nil
}

// UpvotePost adds delta to the post's vote total and returns the new total.
// Any delta is accepted and the total may go negative.
func (r *PostRepository) UpvotePost(ctx context.Context, id string, delta int) (int, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	i := indexOfPost(posts, id)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	posts[i].Upvotes += delta
	if err := r.save(ctx, posts); err != nil {
		return 0, err
	}

	r.logger.Debug("post voted", "post_id", id, "delta", delta, "upvotes", posts[i].Upvotes)
	return posts[i].Upvotes, nil
}

// ToggleBookmark flips whether postID is bookmarked and reports the new
// state. The post itself is not consulted, so unknown ids can be bookmarked.
func (r *PostRepository) ToggleBookmark(ctx context.Context, postID string) (bool, error) {
	ids, err := Load(ctx, r.store, KeyBookmarks, []string{})
	if err != nil {
		return false, err
	}

	bookmarked := false
	if i := slices.Index(ids, postID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, postID)
		bookmarked = true
	}

	if err := Save(ctx, r.store, KeyBookmarks, ids); err != nil {
		return false, err
	}

	r.logger.Info("bookmark toggled", "post_id", postID, "bookmarked", bookmarked)
	return bookmarked, nil
}

// IsBookmarked reports whether postID is in the bookmark list.
func (r *PostRepository) IsBookmarked(ctx context.Context, postID string) (bool, error) {
	ids, err := Load(ctx, r.store, KeyBookmarks, []string{})
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, postID), nil
}

// ListBookmarkedPosts returns the bookmarked posts in store order.
// Bookmarked ids with no matching post are skipped.
func (r *PostRepository) ListBookmarkedPosts(ctx context.Context) ([]model.Post, error) {
	ids, err := Load(ctx, r.store, KeyBookmarks, []string{})
	if err != nil {
		return nil, err
	}
	posts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := []model.Post{}
	for _, p := range posts {
		if slices.Contains(ids, p.ID) {
			result = append(result, p)
		}
	}
	return result, nil
}

// AddComment appends a root comment by the session user to the post and
// returns it.
func (r *PostRepository) AddComment(ctx context.Context, session *Session, postID, text string) (model.Comment, error) {
	return r.insert(ctx, session, postID, "", false, text)
}

// AddReply attaches a reply by the session user beneath the first comment,
// in depth-first pre-order, whose id is parentID. If no comment matches,
// ErrCommentNotFound is returned and nothing is written.
func (r *PostRepository) AddReply(ctx context.Context, session *Session, postID, parentID, text string) (model.Comment, error) {
	return r.insert(ctx, session, postID, parentID, true, text)
}

// insert adds a root comment, or a reply beneath parentID when reply is set.
func (r *PostRepository) insert(ctx context.Context, session *Session, postID, parentID string, reply bool, text string) (model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, ErrEmptyBody
	}

	posts, err := r.load(ctx)
	if err != nil {
		return model.Comment{}, err
	}
	i := indexOfPost(posts, postID)
	if i < 0 {
		return model.Comment{}, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}
	post := &posts[i]

	prefix := "c-"
	if reply {
		prefix = "r-"
	}
	comment := model.Comment{
		ID:        prefix + r.idgen.New(),
		Author:    session.Author(),
		Body:      text,
		Timestamp: JustNow,
		Upvotes:   0,
		Replies:   []model.Comment{},
	}

	if !reply {
		post.Comments = append(post.Comments, comment)
	} else if parentID == "" || !appendReply(post.Comments, parentID, comment) {
		return model.Comment{}, fmt.Errorf("%w: %s", ErrCommentNotFound, parentID)
	}
	if err := r.save(ctx, posts); err != nil {
		return model.Comment{}, err
	}

	if !reply {
		r.logger.Info("comment added", "post_id", postID, "comment_id", comment.ID, "comments", post.CommentsCount)
	} else {
		r.logger.Info("reply added", "post_id", postID, "parent_id", parentID, "comment_id", comment.ID, "comments", post.CommentsCount)
	}
	return comment, nil
}

func (r *PostRepository) load(ctx context.Context) ([]model.Post, error) {
	return Load(ctx, r.store, KeyPosts, seedPosts())
}

// save rebuilds every post's comment count from its tree before writing.
func (r *PostRepository) save(ctx context.Context, posts []model.Post) error {
	for i := range posts {
		posts[i].CommentsCount = CountComments(posts[i].Comments)
	}
	return Save(ctx, r.store, KeyPosts, posts)
}

func indexOfPost(posts []model.Post, id string) int {
	return slices.IndexFunc(posts, func(p model.Post) bool { return p.ID == id })
}

// NormalizeTags trims and lowercases each tag, dropping empties and
// duplicates while keeping first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
