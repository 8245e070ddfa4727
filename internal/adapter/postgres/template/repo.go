// Package template implements the content template catalog using PostgreSQL.
package template

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

// Repo provides content_templates persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListActive returns active templates, least used first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.ContentTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "category", "template_text", "is_active", "usage_count").
		From("content_templates").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("usage_count ASC", "created_at ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "content_template", uuid.Nil)
	}

	templates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContentTemplate, error) {
		var t domain.ContentTemplate
		err := row.Scan(&t.ID, &t.Category, &t.TemplateText, &t.IsActive, &t.UsageCount)
		return t, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "content_template", uuid.Nil)
	}
	return templates, nil
}

// IncrementUsage bumps usage_count of a template.
func (r *Repo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("content_templates").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "content_template", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_template %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
