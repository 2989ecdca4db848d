package model

import "strings"

// Category groups posts by topic.
type Category string

const (
	CategoryEngineering Category = "Engineering"
	CategoryDesign      Category = "Design"
	CategoryPerformance Category = "Performance"
	CategoryGeneral     Category = "General"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryEngineering, CategoryDesign, CategoryPerformance, CategoryGeneral}

// ParseCategory maps a free-form category name onto a known Category.
// Matching is case-insensitive; unknown or empty names become General.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c
		}
	}
	return CategoryGeneral
}

// User is a forum member. Posts and comments carry a snapshot of their
// author, not a reference to the member record.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	Role           string `json:"role"`
	Reputation     int    `json:"reputation"`
	JoinedAt       string `json:"joinedAt"`
	PostsCount     int    `json:"postsCount"`
	SolutionsCount int    `json:"solutionsCount"`
}

// Comment is a node in a post's comment tree. Root comments have ids
// prefixed "c-", replies "r-".
type Comment struct {
	ID        string    `json:"id"`
	Author    User      `json:"author"`
	Body      string    `json:"body"`
	Timestamp string    `json:"timestamp"` // display string, not sortable
	Upvotes   int       `json:"upvotes"`
	Replies   []Comment `json:"replies"`
}

// Post is a discussion thread.
type Post struct {
	ID            string    `json:"id"` // creation time in unix millis; doubles as sort key
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Author        User      `json:"author"`
	Category      Category  `json:"category"`
	Tags          []string  `json:"tags"`
	Upvotes       int       `json:"upvotes"`
	CommentsCount int       `json:"commentsCount"` // cached node count of Comments
	Timestamp     string    `json:"timestamp"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	Comments      []Comment `json:"comments,omitempty"`
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationReply   NotificationType = "reply"
	NotificationMention NotificationType = "mention"
	NotificationUpvote  NotificationType = "upvote"
	NotificationBadge   NotificationType = "badge"
	NotificationSystem  NotificationType = "system"
)

// Notification is an entry in the current user's inbox.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	IsRead    bool             `json:"isRead"`
	Link      string           `json:"link"`
	Avatar    string           `json:"avatar,omitempty"`
}

type BadgeCategory string

const (
	BadgeEngagement BadgeCategory = "Engagement"
	BadgeExpertise  BadgeCategory = "Expertise"
	BadgeSocial     BadgeCategory = "Social"
	BadgeSpecial    BadgeCategory = "Special"
)

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "Common"
	RarityRare      BadgeRarity = "Rare"
	RarityEpic      BadgeRarity = "Epic"
	RarityLegendary BadgeRarity = "Legendary"
)

// BadgeProgress tracks how close an unearned badge is.
type BadgeProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// Badge is read-only reference data.
type Badge struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Category    BadgeCategory  `json:"category"`
	Rarity      BadgeRarity    `json:"rarity"`
	IsEarned    bool           `json:"isEarned"`
	Progress    *BadgeProgress `json:"progress,omitempty"`
}

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
