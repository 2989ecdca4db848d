package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"forumhub/internal/forum"
)

// Services are the repositories and collaborators the API serves.
type Services struct {
	Store         forum.Store
	Posts         *forum.PostRepository
	Notifications *forum.NotificationRepository
	Users         *forum.UserRepository
	Badges        *forum.BadgeRepository
	Theme         *forum.ThemeRepository
	Tagger        forum.Tagger
	Logger        forum.Logger
}

// Server exposes Services over a JSON HTTP API.
type Server struct {
	svc            Services
	allowedOrigins []string
}

func New(svc Services, allowedOrigins []string) *Server {
	if svc.Logger == nil {
		svc.Logger = forum.NewNopLogger()
	}
	return &Server{svc: svc, allowedOrigins: allowedOrigins}
}

// NewHTTPServer wraps the router in an http.Server listening on addr.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Routes builds the gin engine with every API route registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	origins := s.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.GET("/posts", s.listPosts)
		api.POST("/posts", s.createPost)
		api.GET("/posts/:id", s.getPost)
		api.POST("/posts/:id/vote", s.votePost)
		api.POST("/posts/:id/bookmark", s.toggleBookmark)
		api.POST("/posts/:id/comments", s.addComment)
		api.POST("/posts/:id/comments/:commentId/replies", s.addReply)
		api.GET("/bookmarks", s.listBookmarks)

		api.GET("/notifications", s.listNotifications)
		api.POST("/notifications", s.addNotification)
		api.POST("/notifications/read-all", s.markAllRead)
		api.POST("/notifications/:id/read", s.markRead)
		api.DELETE("/notifications", s.clearNotifications)

		api.GET("/members", s.listMembers)
		api.GET("/badges", s.listBadges)

		api.GET("/me", s.getMe)
		api.PUT("/me", s.updateMe)

		api.GET("/theme", s.getTheme)
		api.PUT("/theme", s.setTheme)

		api.POST("/tags/suggest", s.suggestTags)
		api.GET("/search", s.search)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.svc.Logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	if err := s.svc.Store.ValidateSetup(c.Request.Context()); err != nil {
		s.svc.Logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
