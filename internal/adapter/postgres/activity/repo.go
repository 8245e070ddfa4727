// Package activity implements the bot activity log using PostgreSQL.
// It provides append-only operations for bot_activity_log records.
package activity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an entry and returns it with id and created_at set.
func (r *Repo) Create(ctx context.Context, e domain.ActivityLogEntry) (domain.ActivityLogEntry, error) {
	if !e.ActivityType.IsValid() {
		return domain.ActivityLogEntry{}, domain.NewValidationError("activity_type", fmt.Sprintf("unknown activity %q", e.ActivityType))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("bot_activity_log").
		Columns("bot_id", "activity_type", "template_id").
		Values(e.BotID, string(e.ActivityType), e.TemplateID).
		Suffix("RETURNING id, created_at"))
	if err != nil {
		return domain.ActivityLogEntry{}, err
	}
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return domain.ActivityLogEntry{}, postgres.MapError(err, "bot_activity", e.BotID)
	}
	return e, nil
}

// Log appends an entry without returning it.
func (r *Repo) Log(ctx context.Context, e domain.ActivityLogEntry) error {
	_, err := r.Create(ctx, e)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByBot returns the most recent entries of a bot, newest first.
func (r *Repo) ListByBot(ctx context.Context, botID uuid.UUID, limit int) ([]domain.ActivityLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "bot_id", "activity_type", "template_id", "created_at").
		From("bot_activity_log").
		Where(squirrel.Eq{"bot_id": botID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, postgres.MapError(err, "bot_activity", botID)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLogEntry, error) {
		var (
			e   domain.ActivityLogEntry
			typ string
		)
		err := row.Scan(&e.ID, &e.BotID, &typ, &e.TemplateID, &e.CreatedAt)
		e.ActivityType = domain.ActivityType(typ)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "bot_activity", botID)
	}
	return entries, nil
}
