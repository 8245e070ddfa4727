package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender selects Romanian grammatical agreement in generated text.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// AccountTypePersonal is the account type given to every synthetic identity.
const AccountTypePersonal = "personal"

// BotMetadata is stored as JSONB in profiles.bot_metadata.
type BotMetadata struct {
	Gender             Gender    `json:"gender"`
	CreatedByBotSystem bool      `json:"created_by_bot_system"`
	CreatedAt          time.Time `json:"created_at"`
}

// BotProfile is a synthetic community member.
type BotProfile struct {
	ID          uuid.UUID
	DisplayName string
	Location    string
	Bio         string
	AvatarURL   *string
	IsBot       bool
	Metadata    BotMetadata
}

// Gender returns the persona gender, defaulting to male when metadata is missing.
func (b BotProfile) Gender() Gender {
	if b.Metadata.Gender.IsValid() {
		return b.Metadata.Gender
	}
	return GenderMale
}

// FirstName returns the first word of the display name.
func (b BotProfile) FirstName() string {
	name := strings.TrimSpace(b.DisplayName)
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

// Avatar returns the avatar URL or an empty string.
func (b BotProfile) Avatar() string {
	if b.AvatarURL == nil {
		return ""
	}
	return *b.AvatarURL
}
