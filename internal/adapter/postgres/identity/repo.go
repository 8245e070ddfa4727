// Package identity is the identity provider for bot accounts. It writes the
// users row, a password auth_methods row and the matching profiles row.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	postgres "github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// Repo creates identities backed by PostgreSQL.
//
// CreateUser issues three inserts; callers wrap it in TxManager.RunInTx so the
// identity is created atomically together with the profile update.
type Repo struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// New creates an identity repository hashing passwords with bcrypt.DefaultCost.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost returns a copy using the given cost. Tests use bcrypt.MinCost.
func (r *Repo) WithBcryptCost(cost int) *Repo {
	c := *r
	c.bcryptCost = cost
	return &c
}

// CreateUser creates a user with a password credential and an empty profile
// carrying the display name and account type. Returns the new user id.
// A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) CreateUser(ctx context.Context, in domain.CreateUserInput) (uuid.UUID, error) {
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), r.bcryptCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	meta, err := json.Marshal(in.Metadata)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal user metadata: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	b := postgres.Builder()

	var confirmedAt any
	if in.EmailConfirmed {
		confirmedAt = squirrel.Expr("now()")
	}

	id := uuid.New()
	if _, err := postgres.Exec(ctx, q, b.
		Insert("users").
		Columns("id", "email", "email_confirmed_at", "raw_user_metadata").
		Values(id, strings.ToLower(in.Email), confirmedAt, meta)); err != nil {
		return uuid.Nil, postgres.MapError(err, "user", id)
	}

	if _, err := postgres.Exec(ctx, q, b.
		Insert("auth_methods").
		Columns("user_id", "method", "password_hash").
		Values(id, domain.AuthMethodPassword.String(), string(hash))); err != nil {
		return uuid.Nil, postgres.MapError(err, "auth_method", id)
	}

	accountType := in.Metadata.AccountType
	if accountType == "" {
		accountType = domain.AccountTypePersonal
	}
	if _, err := postgres.Exec(ctx, q, b.
		Insert("profiles").
		Columns("id", "display_name", "account_type").
		Values(id, in.Metadata.DisplayName, accountType)); err != nil {
		return uuid.Nil, postgres.MapError(err, "profile", id)
	}

	return id, nil
}

// VerifyPassword reports whether password matches the user's stored hash.
func (r *Repo) VerifyPassword(ctx context.Context, userID uuid.UUID, password string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRow(ctx, q, postgres.Builder().
		Select("password_hash").
		From("auth_methods").
		Where("user_id = ? AND method = ?", userID, domain.AuthMethodPassword.String()))
	if err != nil {
		return false, err
	}

	var hash string
	if err := row.Scan(&hash); err != nil {
		return false, postgres.MapError(err, "auth_method", userID)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
