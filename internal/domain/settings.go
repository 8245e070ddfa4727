package domain

import "time"

// Settings keys in app_settings.
const (
	SettingBotSystemEnabled = "bot_system_enabled"
	SettingBotContentConfig = "bot_content_config"
)

// HoursPerDay divides a daily quota into the per-invocation slice.
const HoursPerDay = 24

// ContentKind is one of the four generated content kinds, in pipeline order.
type ContentKind string

const (
	KindFeedPost    ContentKind = "feed_post"
	KindForumTopic  ContentKind = "forum_topic"
	KindForumReply  ContentKind = "forum_reply"
	KindFeedComment ContentKind = "feed_comment"
)

// ContentKinds lists the kinds in the order they run.
var ContentKinds = []ContentKind{KindFeedPost, KindForumTopic, KindForumReply, KindFeedComment}

func (k ContentKind) String() string { return string(k) }

// ActiveHours is a [Start, End) window of local hours. Start == End means
// always active; Start > End wraps past midnight.
type ActiveHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether t falls within the window.
func (h ActiveHours) Contains(t time.Time) bool {
	if h.Start == h.End {
		return true
	}
	hour := t.Hour()
	if h.Start < h.End {
		return hour >= h.Start && hour < h.End
	}
	return hour >= h.Start || hour < h.End
}

// ContentStyle holds percentage weights for feed post styles.
type ContentStyle struct {
	TextOnly     int `json:"text_only"`
	WithHashtags int `json:"with_hashtags"`
	WithMentions int `json:"with_mentions"`
}

// DelayRange bounds the pause between iterations, in minutes.
type DelayRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Bounds returns the range as durations, with Max clamped to Min.
func (d DelayRange) Bounds() (time.Duration, time.Duration) {
	lo := max(d.Min, 0)
	hi := max(d.Max, lo)
	return time.Duration(lo) * time.Minute, time.Duration(hi) * time.Minute
}

// ContentConfig is the per-invocation configuration snapshot stored as JSON
// in app_settings under SettingBotContentConfig. It is never mutated during a run.
type ContentConfig struct {
	Enabled            bool         `json:"enabled"`
	BotCount           int          `json:"bot_count"`
	PostsPerDay        int          `json:"posts_per_day"`
	ForumTopicsPerDay  int          `json:"forum_topics_per_day"`
	ForumRepliesPerDay int          `json:"forum_replies_per_day"`
	CommentsPerDay     int          `json:"comments_per_day"`
	ActiveHours        ActiveHours  `json:"active_hours"`
	ContentStyle       ContentStyle `json:"content_style"`
	DelayMinutes       DelayRange   `json:"delay_minutes"`
}

// DefaultContentConfig is used when the settings row is missing. Its active
// hours window is always open; narrowing it is an operator choice.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		Enabled:            true,
		BotCount:           20,
		PostsPerDay:        24,
		ForumTopicsPerDay:  6,
		ForumRepliesPerDay: 24,
		CommentsPerDay:     48,
		ActiveHours:        ActiveHours{Start: 0, End: 0},
		ContentStyle:       ContentStyle{TextOnly: 70, WithHashtags: 20, WithMentions: 10},
		DelayMinutes:       DelayRange{Min: 1, Max: 3},
	}
}

// DailyQuota returns the configured daily target for kind.
func (c ContentConfig) DailyQuota(kind ContentKind) int {
	switch kind {
	case KindFeedPost:
		return c.PostsPerDay
	case KindForumTopic:
		return c.ForumTopicsPerDay
	case KindForumReply:
		return c.ForumRepliesPerDay
	case KindFeedComment:
		return c.CommentsPerDay
	}
	return 0
}

// Iterations returns ceil(DailyQuota(kind) / HoursPerDay).
func (c ContentConfig) Iterations(kind ContentKind) int {
	q := c.DailyQuota(kind)
	if q <= 0 {
		return 0
	}
	return (q + HoursPerDay - 1) / HoursPerDay
}

// Validate checks the snapshot for values a run cannot work with.
func (c ContentConfig) Validate() error {
	var errs []FieldError
	if c.BotCount < 0 {
		errs = append(errs, FieldError{Field: "bot_count", Message: "must be non-negative"})
	}
	for _, kind := range ContentKinds {
		if c.DailyQuota(kind) < 0 {
			errs = append(errs, FieldError{Field: string(kind) + "_per_day", Message: "must be non-negative"})
		}
	}
	if c.DelayMinutes.Min < 0 || c.DelayMinutes.Max < c.DelayMinutes.Min {
		errs = append(errs, FieldError{Field: "delay_minutes", Message: "need 0 <= min <= max"})
	}
	if c.ActiveHours.Start < 0 || c.ActiveHours.Start > 23 || c.ActiveHours.End < 0 || c.ActiveHours.End > 24 {
		errs = append(errs, FieldError{Field: "active_hours", Message: "hours must be within 0..24"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Results tallies successful iterations of one invocation.
type Results struct {
	PostsCreated       int `json:"posts_created"`
	ForumTopicsCreated int `json:"forum_topics_created"`
	RepliesCreated     int `json:"replies_created"`
	CommentsCreated    int `json:"comments_created"`
}

// Add increments the counter for kind.
func (r *Results) Add(kind ContentKind) {
	switch kind {
	case KindFeedPost:
		r.PostsCreated++
	case KindForumTopic:
		r.ForumTopicsCreated++
	case KindForumReply:
		r.RepliesCreated++
	case KindFeedComment:
		r.CommentsCreated++
	}
}

// Total returns the number of items created.
func (r Results) Total() int {
	return r.PostsCreated + r.ForumTopicsCreated + r.RepliesCreated + r.CommentsCreated
}
