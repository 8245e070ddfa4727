// Package lock provides single-flight guards for generator invocations.
//
// A Locker hands out at most one Release at a time per key. When the key is
// already held, TryLock returns domain.ErrRunInProgress without blocking.
package lock

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/community-bots/internal/config"
)

// Release frees a held lock. It is safe to call once.
type Release func(ctx context.Context) error

// Locker acquires the run lock without waiting.
type Locker interface {
	TryLock(ctx context.Context) (Release, error)
}

// New builds the Locker selected by cfg.Backend. pool and rdb may be nil when
// the chosen backend does not need them.
func New(cfg config.LockConfig, pool *pgxpool.Pool, rdb *redis.Client) (Locker, error) {
	switch cfg.Backend {
	case config.LockPostgres:
		if pool == nil {
			return nil, fmt.Errorf("lock: postgres backend needs a pool")
		}
		return NewPostgres(pool, cfg.Key), nil
	case config.LockRedis:
		if rdb == nil {
			return nil, fmt.Errorf("lock: redis backend needs a client")
		}
		return NewRedis(rdb, cfg.Key, cfg.TTL), nil
	case config.LockFile:
		return NewFile(cfg.FilePath), nil
	case config.LockNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("lock: unknown backend %q", cfg.Backend)
	}
}

// Noop never contends.
type Noop struct{}

// TryLock always succeeds.
func (Noop) TryLock(context.Context) (Release, error) {
	return func(context.Context) error { return nil }, nil
}
