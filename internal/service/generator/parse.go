package generator

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ForumTopic is the object the model is asked to return for a new topic.
type ForumTopic struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// TopicParse is the tagged result of ParseForumTopic. When OK is false, Topic
// is zero and Raw holds the unparsed text.
type TopicParse struct {
	OK    bool
	Topic ForumTopic
	Raw   string
}

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// ParseForumTopic decodes raw as a bare JSON object, then as the first fenced
// code block. A topic without title or content does not parse.
func ParseForumTopic(raw string) TopicParse {
	if t, ok := decodeTopic(raw); ok {
		return TopicParse{OK: true, Topic: t, Raw: raw}
	}
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		if t, ok := decodeTopic(m[1]); ok {
			return TopicParse{OK: true, Topic: t, Raw: raw}
		}
	}
	return TopicParse{Raw: raw}
}

func decodeTopic(s string) (ForumTopic, bool) {
	var t ForumTopic
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &t); err != nil {
		return ForumTopic{}, false
	}
	t.Title = strings.TrimSpace(t.Title)
	t.Content = strings.TrimSpace(t.Content)
	t.Category = strings.TrimSpace(t.Category)
	if t.Title == "" || t.Content == "" {
		return ForumTopic{}, false
	}
	return t, true
}
