package testutil

import (
	"forumhub/internal/forum"
	"forumhub/internal/model"
)

// TestUser returns the member tests act as.
func TestUser() model.User {
	return model.User{
		ID:         "u-test",
		Name:       "Test User",
		Username:   "test_user",
		Avatar:     "https://picsum.photos/seed/test/100/100",
		Role:       "Engineering",
		Reputation: 10,
		JoinedAt:   "Jan 2024",
	}
}

// NewTestSession returns a session acting as TestUser.
func NewTestSession() *forum.Session {
	return forum.NewSession(TestUser())
}
