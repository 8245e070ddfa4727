package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedPost is a row of feed_posts.
type FeedPost struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	AuthorName   string
	AuthorAvatar *string
	Content      string
	CreatedAt    time.Time
}

// FeedComment is a row of feed_comments.
type FeedComment struct {
	ID           uuid.UUID
	PostID       uuid.UUID
	AuthorID     uuid.UUID
	AuthorName   string
	AuthorAvatar *string
	Content      string
	CreatedAt    time.Time
}

// ForumPost is a forum topic (row of forum_posts).
type ForumPost struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Title      string
	Content    string
	Category   string
	CreatedAt  time.Time
}

// ForumReply is a row of forum_replies.
type ForumReply struct {
	ID         uuid.UUID
	PostID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

// ForumCategory is a row of forum_categories.
type ForumCategory struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	SortOrder int
}

// ContentTemplate is a reusable phrase with placeholder tokens such as {city}.
type ContentTemplate struct {
	ID           uuid.UUID
	Category     string
	TemplateText string
	IsActive     bool
	UsageCount   int
}
