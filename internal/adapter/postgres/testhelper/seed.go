package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a users row and an empty profile.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:    uuid.New(),
		Email: "testuser-" + suffix + "@example.com",
		Metadata: domain.UserMetadata{
			AccountType: domain.AccountTypePersonal,
			DisplayName: "Test User " + suffix,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	meta, err := json.Marshal(user.Metadata)
	if err != nil {
		t.Fatalf("testhelper: SeedUser marshal metadata: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, raw_user_metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, meta, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (id, display_name, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
		user.ID, user.Metadata.DisplayName, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedBot creates a user whose profile is flagged as a bot.
func SeedBot(t *testing.T, pool *pgxpool.Pool, gender domain.Gender) domain.BotProfile {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool)
	bot := domain.BotProfile{
		ID:          user.ID,
		DisplayName: "Bot " + uniqueSuffix(),
		Location:    "London",
		Bio:         "Român în London.",
		IsBot:       true,
		Metadata: domain.BotMetadata{
			Gender:             gender,
			CreatedByBotSystem: true,
			CreatedAt:          time.Now().UTC().Truncate(time.Second),
		},
	}

	meta, err := json.Marshal(bot.Metadata)
	if err != nil {
		t.Fatalf("testhelper: SeedBot marshal metadata: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE profiles SET display_name = $2, location = $3, bio = $4, is_bot = true, bot_metadata = $5
		 WHERE id = $1`,
		bot.ID, bot.DisplayName, bot.Location, bot.Bio, meta,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBot update profile: %v", err)
	}

	return bot
}

// SeedFeedPost inserts a feed post authored by authorID.
func SeedFeedPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, content string) domain.FeedPost {
	t.Helper()

	p := domain.FeedPost{
		ID:         uuid.New(),
		AuthorID:   authorID,
		AuthorName: "Author " + uniqueSuffix(),
		Content:    content,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO feed_posts (id, author_id, author_name, content) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		p.ID, p.AuthorID, p.AuthorName, p.Content,
	).Scan(&p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFeedPost: %v", err)
	}
	return p
}

// SeedForumPost inserts a forum topic authored by authorID.
func SeedForumPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, title string) domain.ForumPost {
	t.Helper()

	p := domain.ForumPost{
		ID:         uuid.New(),
		AuthorID:   authorID,
		AuthorName: "Author " + uniqueSuffix(),
		Title:      title,
		Content:    "Conținut pentru " + title,
		Category:   "Transport",
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO forum_posts (id, author_id, author_name, title, content, category)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`,
		p.ID, p.AuthorID, p.AuthorName, p.Title, p.Content, p.Category,
	).Scan(&p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedForumPost: %v", err)
	}
	return p
}

// SeedTemplate inserts a content template.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, text string, active bool) domain.ContentTemplate {
	t.Helper()

	tpl := domain.ContentTemplate{
		ID:           uuid.New(),
		Category:     "test-" + uniqueSuffix(),
		TemplateText: text,
		IsActive:     active,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO content_templates (id, category, template_text, is_active) VALUES ($1, $2, $3, $4)`,
		tpl.ID, tpl.Category, tpl.TemplateText, tpl.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate: %v", err)
	}
	return tpl
}

// SetSetting upserts an app_settings row with value marshalled as JSON.
func SetSetting(t *testing.T, pool *pgxpool.Pool, key string, value any) {
	t.Helper()

	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("testhelper: SetSetting marshal: %v", err)
	}
	_, err = pool.Exec(context.Background(),
		`INSERT INTO app_settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SetSetting: %v", err)
	}
}
