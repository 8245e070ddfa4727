package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an identity row in users. Bot identities are ordinary users whose
// profile carries the bot flag.
type User struct {
	ID               uuid.UUID
	Email            string
	EmailConfirmedAt *time.Time
	Metadata         UserMetadata
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserMetadata is stored as JSONB in users.raw_user_metadata.
type UserMetadata struct {
	AccountType string `json:"account_type"`
	DisplayName string `json:"display_name"`
}

// IsEmailConfirmed returns true if the address was confirmed at creation or later.
func (u *User) IsEmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// AuthMethodType names a credential kind in auth_methods. Bots only get a
// password they never use.
type AuthMethodType string

const AuthMethodPassword AuthMethodType = "password"

func (m AuthMethodType) String() string { return string(m) }

// CreateUserInput is what the identity provider needs to create a user.
type CreateUserInput struct {
	Email          string
	Password       string
	EmailConfirmed bool
	Metadata       UserMetadata
}

// Validate checks the input before any row is written.
func (in CreateUserInput) Validate() error {
	var errs []FieldError
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "must be an email address"})
	}
	if len(in.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(in.Password) > 72 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
