// Package forum implements forum category, topic and reply persistence using PostgreSQL.
package forum

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// Repo provides forum persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new forum repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListActiveCategories returns active categories ordered by sort_order.
func (r *Repo) ListActiveCategories(ctx context.Context) ([]domain.ForumCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "name", "is_active", "sort_order").
		From("forum_categories").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("sort_order ASC", "name ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "forum_category", uuid.Nil)
	}

	cats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ForumCategory, error) {
		var c domain.ForumCategory
		err := row.Scan(&c.ID, &c.Name, &c.IsActive, &c.SortOrder)
		return c, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "forum_category", uuid.Nil)
	}
	return cats, nil
}

// CreatePost inserts a forum topic.
func (r *Repo) CreatePost(ctx context.Context, p domain.ForumPost) (domain.ForumPost, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("forum_posts").
		Columns("author_id", "author_name", "title", "content", "category").
		Values(p.AuthorID, p.AuthorName, p.Title, p.Content, p.Category).
		Suffix("RETURNING id, created_at"))
	if err != nil {
		return domain.ForumPost{}, err
	}
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return domain.ForumPost{}, postgres.MapError(err, "forum_post", p.AuthorID)
	}
	return p, nil
}

// ListRecentPosts returns up to limit topics, newest first.
func (r *Repo) ListRecentPosts(ctx context.Context, limit int) ([]domain.ForumPost, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "author_id", "author_name", "title", "content", "category", "created_at").
		From("forum_posts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, postgres.MapError(err, "forum_post", uuid.Nil)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ForumPost, error) {
		var p domain.ForumPost
		err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Content, &p.Category, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "forum_post", uuid.Nil)
	}
	return posts, nil
}

// CreateReply inserts a reply to an existing topic.
func (r *Repo) CreateReply(ctx context.Context, reply domain.ForumReply) (domain.ForumReply, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("forum_replies").
		Columns("post_id", "author_id", "author_name", "content").
		Values(reply.PostID, reply.AuthorID, reply.AuthorName, reply.Content).
		Suffix("RETURNING id, created_at"))
	if err != nil {
		return domain.ForumReply{}, err
	}
	if err := row.Scan(&reply.ID, &reply.CreatedAt); err != nil {
		return domain.ForumReply{}, postgres.MapError(err, "forum_reply", reply.PostID)
	}
	return reply, nil
}
