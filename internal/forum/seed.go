package forum

import "forumhub/internal/model"

// Seed collections written on first access to an empty store. Every function
// returns a fresh value so callers may mutate the result.

func seedCurrentUser() model.User {
	return model.User{
		ID:             "u-current",
		Name:           "Alex Rivers",
		Username:       "alex_rivers",
		Avatar:         "https://picsum.photos/seed/alex/100/100",
		Role:           "Pro Contributor",
		Reputation:     1250,
		JoinedAt:       "Jan 2024",
		PostsCount:     12,
		SolutionsCount: 3,
	}
}

func seedSarah() model.User {
	return model.User{
		ID:             "s1",
		Name:           "Sarah Chen",
		Username:       "sarah_dev",
		Avatar:         "https://picsum.photos/seed/sarah/50/50",
		Role:           "Engineering",
		Reputation:     1200,
		JoinedAt:       "2022-01-01",
		PostsCount:     45,
		SolutionsCount: 12,
	}
}

func seedAlexRivera() model.User {
	return model.User{
		ID:             "a1",
		Name:           "Alex Rivera",
		Username:       "arivera",
		Avatar:         "https://picsum.photos/seed/alex/50/50",
		Role:           "Design",
		Reputation:     8500,
		JoinedAt:       "2021-10-01",
		PostsCount:     1248,
		SolutionsCount: 42,
	}
}

// The seeded counts describe threads whose comments were never stored, so
// they only match the tree once the posts are first written back.
func seedPosts() []model.Post {
	return []model.Post{
		{
			ID:            "1",
			Title:         "How to scale React applications for enterprise use?",
			Body:          "Exploring architecture patterns like micro-frontends, state management performance, and code-splitting strategies for large teams.",
			Author:        seedSarah(),
			Category:      model.CategoryEngineering,
			Tags:          []string{"react", "enterprise", "architecture"},
			Upvotes:       1200,
			CommentsCount: 45,
			Timestamp:     "2 hours ago",
			Thumbnail:     "https://picsum.photos/seed/tech1/320/180",
		},
		{
			ID:            "2",
			Title:         "Modern UI design patterns for 2024",
			Body:          "Diving deep into the return of skeuomorphism, the refinement of bento grids, and high-density information displays.",
			Author:        seedAlexRivera(),
			Category:      model.CategoryDesign,
			Tags:          []string{"ui-ux", "trends", "design"},
			Upvotes:       856,
			CommentsCount: 128,
			Timestamp:     "5 hours ago",
			Thumbnail:     "https://picsum.photos/seed/design1/320/180",
		},
	}
}

func seedMembers() []model.User {
	return []model.User{
		seedAlexRivera(),
		seedSarah(),
		{
			ID:             "m1",
			Name:           "Marcus Thorne",
			Username:       "mthorne",
			Avatar:         "https://picsum.photos/seed/marcus/50/50",
			Role:           "Performance",
			Reputation:     6120,
			JoinedAt:       "2022-06-14",
			PostsCount:     310,
			SolutionsCount: 58,
		},
		{
			ID:             "j1",
			Name:           "Jordan Lee",
			Username:       "jlee_ui",
			Avatar:         "https://picsum.photos/seed/jordan/50/50",
			Role:           "Design",
			Reputation:     940,
			JoinedAt:       "2023-03-02",
			PostsCount:     27,
			SolutionsCount: 2,
		},
		seedCurrentUser(),
	}
}

func seedBadges() []model.Badge {
	return []model.Badge{
		{ID: "b1", Name: "First Post", Description: "Published your first thread.", Icon: "edit_note", Category: model.BadgeEngagement, Rarity: model.RarityCommon, IsEarned: true},
		{ID: "b2", Name: "Conversationalist", Description: "Left 50 comments.", Icon: "forum", Category: model.BadgeEngagement, Rarity: model.RarityRare, Progress: &model.BadgeProgress{Current: 32, Target: 50}},
		{ID: "b3", Name: "Problem Solver", Description: "Had 3 answers marked as the solution.", Icon: "task_alt", Category: model.BadgeExpertise, Rarity: model.RarityRare, IsEarned: true},
		{ID: "b4", Name: "Guru", Description: "Reached 10,000 reputation.", Icon: "psychology", Category: model.BadgeExpertise, Rarity: model.RarityLegendary, Progress: &model.BadgeProgress{Current: 1250, Target: 10000}},
		{ID: "b5", Name: "Networker", Description: "Gained 25 followers.", Icon: "group_add", Category: model.BadgeSocial, Rarity: model.RarityCommon, IsEarned: true},
		{ID: "b6", Name: "Early Adopter", Description: "Joined during the first year.", Icon: "rocket_launch", Category: model.BadgeSpecial, Rarity: model.RarityEpic},
	}
}

func seedNotifications() []model.Notification {
	return []model.Notification{
		{ID: "n1", Type: model.NotificationReply, Title: "New reply", Message: "Sarah Chen replied to your comment.", Timestamp: "5m ago", Link: "/thread/1", Avatar: "https://picsum.photos/seed/sarah/50/50"},
		{ID: "n2", Type: model.NotificationUpvote, Title: "Upvotes", Message: "Your post received 10 new upvotes.", Timestamp: "1h ago", Link: "/thread/2"},
		{ID: "n3", Type: model.NotificationBadge, Title: "Badge earned", Message: "You earned the Problem Solver badge.", Timestamp: "3h ago", Link: "/badges"},
		{ID: "n4", Type: model.NotificationMention, Title: "Mention", Message: "Alex Rivera mentioned you in a thread.", Timestamp: "1d ago", IsRead: true, Link: "/thread/2", Avatar: "https://picsum.photos/seed/alex/50/50"},
		{ID: "n5", Type: model.NotificationSystem, Title: "Welcome", Message: "Welcome to ForumHub!", Timestamp: "2d ago", IsRead: true, Link: "/"},
	}
}
