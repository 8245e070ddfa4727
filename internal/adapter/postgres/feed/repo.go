// Package feed implements feed post and comment persistence using PostgreSQL.
package feed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// Repo provides feed_posts and feed_comments persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feed repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

// CreatePost inserts a feed post and returns it with id and created_at set.
func (r *Repo) CreatePost(ctx context.Context, p domain.FeedPost) (domain.FeedPost, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("feed_posts").
		Columns("author_id", "author_name", "author_avatar", "content").
		Values(p.AuthorID, p.AuthorName, p.AuthorAvatar, p.Content).
		Suffix("RETURNING id, created_at"))
	if err != nil {
		return domain.FeedPost{}, err
	}
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return domain.FeedPost{}, postgres.MapError(err, "feed_post", p.AuthorID)
	}
	return p, nil
}

// ListRecentPosts returns up to limit posts, newest first.
func (r *Repo) ListRecentPosts(ctx context.Context, limit int) ([]domain.FeedPost, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "author_id", "author_name", "author_avatar", "content", "created_at").
		From("feed_posts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, postgres.MapError(err, "feed_post", uuid.Nil)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeedPost, error) {
		var p domain.FeedPost
		err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.AuthorAvatar, &p.Content, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "feed_post", uuid.Nil)
	}
	return posts, nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// CreateComment inserts a comment on an existing post. A missing post maps
// to domain.ErrNotFound.
func (r *Repo) CreateComment(ctx context.Context, c domain.FeedComment) (domain.FeedComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("feed_comments").
		Columns("post_id", "author_id", "author_name", "author_avatar", "content").
		Values(c.PostID, c.AuthorID, c.AuthorName, c.AuthorAvatar, c.Content).
		Suffix("RETURNING id, created_at"))
	if err != nil {
		return domain.FeedComment{}, err
	}
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return domain.FeedComment{}, postgres.MapError(err, "feed_comment", c.PostID)
	}
	return c, nil
}

// ListComments returns the comments of a post, oldest first.
func (r *Repo) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.FeedComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("id", "post_id", "author_id", "author_name", "author_avatar", "content", "created_at").
		From("feed_comments").
		Where("post_id = ?", postID).
		OrderBy("created_at ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "feed_comment", postID)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeedComment, error) {
		var c domain.FeedComment
		err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.AuthorAvatar, &c.Content, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "feed_comment", postID)
	}
	return comments, nil
}
