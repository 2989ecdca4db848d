package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forumhub/internal/forum"
)

// statusFor maps repository errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, forum.ErrPostNotFound), errors.Is(err, forum.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, forum.ErrEmptyBody), errors.Is(err, forum.ErrInvalidTheme):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.svc.Logger.Error("request failed", "path", c.FullPath(), "error", err)
		var corrupt *forum.CorruptDataError
		if errors.As(err, &corrupt) {
			c.JSON(status, gin.H{"error": "stored data is corrupt", "key": corrupt.Key})
			return
		}
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
