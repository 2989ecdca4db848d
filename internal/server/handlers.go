package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forumhub/internal/forum"
	"forumhub/internal/model"
)

type createPostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type voteRequest struct {
	Delta int `json:"delta"`
}

type commentRequest struct {
	Body string `json:"body"`
}

type themeRequest struct {
	Theme model.Theme `json:"theme" binding:"required"`
}

type suggestRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// listPosts serves the home, trending, new and bookmarks feeds, narrowed by
// category and search text.
func (s *Server) listPosts(c *gin.Context) {
	ctx := c.Request.Context()
	feed := forum.Feed(c.Query("feed"))

	var (
		posts []model.Post
		err   error
	)
	if feed == forum.FeedBookmarks {
		posts, err = s.svc.Posts.ListBookmarkedPosts(ctx)
	} else {
		posts, err = s.svc.Posts.ListPosts(ctx)
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	posts = forum.FilterByCategory(posts, c.Query("category"))
	posts = forum.FilterPosts(posts, c.Query("q"))
	posts = forum.SortPosts(posts, feed)
	c.JSON(http.StatusOK, posts)
}

func (s *Server) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title and body are required")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		badRequest(c, "title and body are required")
		return
	}
	if len(forum.NormalizeTags(req.Tags)) > forum.MaxTags {
		badRequest(c, fmt.Sprintf("at most %d tags allowed", forum.MaxTags))
		return
	}

	ctx := c.Request.Context()
	session, err := s.svc.Users.Session(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	post, err := s.svc.Posts.CreatePost(ctx, session, req.Title, req.Body, req.Category, req.Tags)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) getPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	post, err := s.svc.Posts.GetPostByID(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	bookmarked, err := s.svc.Posts.IsBookmarked(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "bookmarked": bookmarked})
}

func (s *Server) votePost(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Delta != 1 && req.Delta != -1) {
		badRequest(c, "delta must be 1 or -1")
		return
	}

	upvotes, err := s.svc.Posts.UpvotePost(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upvotes": upvotes})
}

func (s *Server) toggleBookmark(c *gin.Context) {
	bookmarked, err := s.svc.Posts.ToggleBookmark(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (s *Server) listBookmarks(c *gin.Context) {
	posts, err := s.svc.Posts.ListBookmarkedPosts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) addComment(c *gin.Context) {
	s.insertComment(c, "")
}

func (s *Server) addReply(c *gin.Context) {
	s.insertComment(c, c.Param("commentId"))
}

func (s *Server) insertComment(c *gin.Context, parentID string) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	session, err := s.svc.Users.Session(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	var comment model.Comment
	if parentID == "" {
		comment, err = s.svc.Posts.AddComment(ctx, session, c.Param("id"), req.Body)
	} else {
		comment, err = s.svc.Posts.AddReply(ctx, session, c.Param("id"), parentID, req.Body)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) listNotifications(c *gin.Context) {
	list, err := s.svc.Notifications.ListNotifications(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.renderInbox(c, list)
}

func (s *Server) renderInbox(c *gin.Context, list []model.Notification) {
	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list, "unread": unread})
}

func (s *Server) addNotification(c *gin.Context) {
	var req forum.NewNotification
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title is required")
		return
	}

	n, err := s.svc.Notifications.AddNotification(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) markRead(c *gin.Context) {
	list, err := s.svc.Notifications.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.renderInbox(c, list)
}

func (s *Server) markAllRead(c *gin.Context) {
	list, err := s.svc.Notifications.MarkAllAsRead(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.renderInbox(c, list)
}

func (s *Server) clearNotifications(c *gin.Context) {
	list, err := s.svc.Notifications.ClearAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.renderInbox(c, list)
}

func (s *Server) listMembers(c *gin.Context) {
	ctx := c.Request.Context()
	members, err := s.svc.Users.ListMembers(ctx, forum.MemberQuery{
		Search: c.Query("q"),
		Role:   c.Query("role"),
		Sort:   forum.MemberSort(c.Query("sort")),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	top, err := s.svc.Users.TopContributors(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "topContributors": top})
}

func (s *Server) listBadges(c *gin.Context) {
	ctx := c.Request.Context()
	badges, err := s.svc.Badges.ListBadges(ctx, c.Query("category"))
	if err != nil {
		s.fail(c, err)
		return
	}
	summary, err := s.svc.Badges.Summary(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges, "summary": summary})
}

func (s *Server) getMe(c *gin.Context) {
	u, err := s.svc.Users.CurrentUser(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateMe(c *gin.Context) {
	var req forum.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	u, err := s.svc.Users.UpdateCurrentUser(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) getTheme(c *gin.Context) {
	t, err := s.svc.Theme.Get(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

func (s *Server) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "theme is required")
		return
	}
	if err := s.svc.Theme.Set(c.Request.Context(), req.Theme); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (s *Server) suggestTags(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title is required")
		return
	}
	tags := s.svc.Tagger.SuggestTags(c.Request.Context(), req.Title, req.Content)
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (s *Server) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "q is required")
		return
	}
	c.JSON(http.StatusOK, s.svc.Tagger.SearchCommunity(c.Request.Context(), q))
}
