// Package profile implements bot profile persistence using PostgreSQL.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

var botColumns = []string{"id", "display_name", "location", "bio", "avatar_url", "is_bot", "bot_metadata"}

// Repo provides profiles persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListBots returns every profile flagged as a bot, oldest first.
func (r *Repo) ListBots(ctx context.Context) ([]domain.BotProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(botColumns...).
		From("profiles").
		Where(squirrel.Eq{"is_bot": true}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	bots, err := pgx.CollectRows(rows, scanBot)
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}
	return bots, nil
}

// GetByID returns a single profile.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BotProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(botColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	bot, err := pgx.CollectExactlyOneRow(rows, scanBot)
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &bot, nil
}

// UpdateBot writes the bot flag, display name, location, bio and persona
// metadata onto an existing profile row.
func (r *Repo) UpdateBot(ctx context.Context, bot domain.BotProfile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	meta, err := json.Marshal(bot.Metadata)
	if err != nil {
		return fmt.Errorf("profile %s marshal metadata: %w", bot.ID, err)
	}

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("profiles").
		Set("is_bot", true).
		Set("display_name", bot.DisplayName).
		Set("location", bot.Location).
		Set("bio", bot.Bio).
		Set("avatar_url", bot.AvatarURL).
		Set("bot_metadata", meta).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": bot.ID}))
	if err != nil {
		return postgres.MapError(err, "profile", bot.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", bot.ID, domain.ErrNotFound)
	}
	return nil
}

func scanBot(row pgx.CollectableRow) (domain.BotProfile, error) {
	var (
		b           domain.BotProfile
		displayName *string
		location    *string
		bio         *string
		meta        []byte
	)
	if err := row.Scan(&b.ID, &displayName, &location, &bio, &b.AvatarURL, &b.IsBot, &meta); err != nil {
		return domain.BotProfile{}, err
	}
	b.DisplayName = deref(displayName)
	b.Location = deref(location)
	b.Bio = deref(bio)

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &b.Metadata); err != nil {
			return domain.BotProfile{}, fmt.Errorf("profile %s bot_metadata: %w", b.ID, err)
		}
	}
	return b, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
