// Package settings reads app-wide settings stored as JSONB in app_settings.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// Repo provides app_settings access backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the raw JSON value stored under key, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Select("value").
		From("app_settings").
		Where(squirrel.Eq{"key": key}))
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		return nil, fmt.Errorf("setting %q: %w", key, postgres.MapError(err, "app_setting", uuid.Nil))
	}
	return raw, nil
}

// GetBool reads a boolean setting. Both JSON true and the string "true" are
// accepted since admin tooling has written either form.
func (r *Repo) GetBool(ctx context.Context, key string) (bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return parseBool(raw)
}

// GetJSON decodes the setting stored under key into dst.
func (r *Repo) GetJSON(ctx context.Context, key string, dst any) error {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("setting %q: %w", key, domain.NewValidationError(key, err.Error()))
	}
	return nil
}

// Set upserts key with value marshalled as JSON.
func (r *Repo) Set(ctx context.Context, key string, value any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("setting %q marshal: %w", key, err)
	}

	_, err = postgres.Exec(ctx, q, postgres.Builder().
		Insert("app_settings").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()"))
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, postgres.MapError(err, "app_setting", uuid.Nil))
	}
	return nil
}

func parseBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, errors.New("setting is neither a boolean nor a string")
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("parse setting %q: %w", s, err)
	}
	return v, nil
}
