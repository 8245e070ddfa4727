package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType identifies what a bot did.
type ActivityType string

const (
	ActivityPostCreated ActivityType = "post_created"
	ActivityForumTopic  ActivityType = "forum_topic"
	ActivityForumReply  ActivityType = "forum_reply"
	ActivityFeedComment ActivityType = "feed_comment"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityPostCreated, ActivityForumTopic, ActivityForumReply, ActivityFeedComment:
		return true
	}
	return false
}

// ActivityLogEntry is an append-only audit row of bot_activity_log.
type ActivityLogEntry struct {
	ID           uuid.UUID
	BotID        uuid.UUID
	ActivityType ActivityType
	TemplateID   *uuid.UUID
	CreatedAt    time.Time
}
