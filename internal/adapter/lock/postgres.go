package lock

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// Postgres holds a session-level advisory lock on a dedicated pool connection.
// The connection stays checked out until Release, so the lock dies with the
// session if the process crashes.
type Postgres struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgres creates an advisory lock keyed by hashtext(key).
func NewPostgres(pool *pgxpool.Pool, key string) *Postgres {
	return &Postgres{pool: pool, key: key}
}

// TryLock implements Locker.
func (p *Postgres) TryLock(ctx context.Context) (Release, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock %s: acquire conn: %w", p.key, err)
	}

	var ok bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", p.key).Scan(&ok); err != nil {
		conn.Release()
		return nil, fmt.Errorf("lock %s: try advisory lock: %w", p.key, err)
	}
	if !ok {
		conn.Release()
		return nil, domain.ErrRunInProgress
	}

	return func(ctx context.Context) error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock(hashtext($1))", p.key); err != nil {
			// Closing the session drops the lock anyway.
			_ = conn.Conn().Close(ctx)
			return fmt.Errorf("lock %s: advisory unlock: %w", p.key, err)
		}
		return nil
	}, nil
}
