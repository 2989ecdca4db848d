package forum

import "forumhub/internal/model"

// Session identifies who is acting. Repositories stamp the session's user
// onto new posts and comments as an owned snapshot.
type Session struct {
	User model.User
}

// NewSession returns a session acting as u.
func NewSession(u model.User) *Session {
	return &Session{User: u}
}

// Author returns a copy of the session user suitable for embedding.
func (s *Session) Author() model.User {
	return s.User
}
