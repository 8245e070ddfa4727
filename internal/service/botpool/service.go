// Package botpool keeps the pool of synthetic community members topped up.
package botpool

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/internal/metrics"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// profileRepo defines the profile operations needed by the pool manager.
type profileRepo interface {
	ListBots(ctx context.Context) ([]domain.BotProfile, error)
	UpdateBot(ctx context.Context, bot domain.BotProfile) error
}

// identityProvider creates the backing user of a bot.
type identityProvider interface {
	CreateUser(ctx context.Context, in domain.CreateUserInput) (uuid.UUID, error)
}

// txManager defines the transaction manager interface needed by the pool manager.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements bot pool operations.
type Service struct {
	log         *slog.Logger
	profiles    profileRepo
	identities  identityProvider
	tx          txManager
	catalog     *Catalog
	rand        randsrc.Source
	clock       clockwork.Clock
	metrics     *metrics.Metrics
	emailDomain string
}

// NewService creates a new bot pool manager.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	identities identityProvider,
	tx txManager,
	catalog *Catalog,
	src randsrc.Source,
	clock clockwork.Clock,
	m *metrics.Metrics,
	emailDomain string,
) *Service {
	return &Service{
		log:         logger.With("service", "botpool"),
		profiles:    profiles,
		identities:  identities,
		tx:          tx,
		catalog:     catalog,
		rand:        src,
		clock:       clock,
		metrics:     m,
		emailDomain: emailDomain,
	}
}

// EnsurePool returns the bot list after creating enough bots to reach n.
// Creation failures are logged and skipped, so the pool may stay below n.
// Existing bots are never removed.
func (s *Service) EnsurePool(ctx context.Context, n int) ([]domain.BotProfile, error) {
	bots, err := s.profiles.ListBots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}

	missing := n - len(bots)
	if missing <= 0 {
		return bots, nil
	}

	s.log.InfoContext(ctx, "topping up bot pool",
		slog.Int("existing", len(bots)),
		slog.Int("target", n),
	)

	created := 0
	for range missing {
		if err := ctx.Err(); err != nil {
			return bots, err
		}
		bot, ok := s.createBot(ctx)
		if !ok {
			continue
		}
		bots = append(bots, bot)
		created++
	}

	s.log.InfoContext(ctx, "bot pool topped up",
		slog.Int("created", created),
		slog.Int("failed", missing-created),
		slog.Int("size", len(bots)),
	)
	return bots, nil
}

// createBot creates one identity and flags its profile. A failure is logged
// and reported as false. No retries.
func (s *Service) createBot(ctx context.Context) (domain.BotProfile, bool) {
	p := s.catalog.draw(s.rand)

	password, err := randomPassword()
	if err != nil {
		s.log.ErrorContext(ctx, "generate bot password", slog.String("error", err.Error()))
		return domain.BotProfile{}, false
	}

	bot := domain.BotProfile{
		DisplayName: p.DisplayName,
		Location:    p.City,
		Bio:         p.Bio,
		IsBot:       true,
		Metadata: domain.BotMetadata{
			Gender:             p.Gender,
			CreatedByBotSystem: true,
			CreatedAt:          s.clock.Now().UTC(),
		},
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.identities.CreateUser(ctx, domain.CreateUserInput{
			Email:          s.email(p.DisplayName),
			Password:       password,
			EmailConfirmed: true,
			Metadata: domain.UserMetadata{
				AccountType: domain.AccountTypePersonal,
				DisplayName: p.DisplayName,
			},
		})
		if err != nil {
			return fmt.Errorf("create identity: %w", err)
		}
		bot.ID = id
		return s.profiles.UpdateBot(ctx, bot)
	})
	if err != nil {
		s.log.WarnContext(ctx, "bot creation failed",
			slog.String("display_name", p.DisplayName),
			slog.String("error", err.Error()),
		)
		return domain.BotProfile{}, false
	}

	s.metrics.BotsCreated.Inc()
	s.log.DebugContext(ctx, "bot created",
		slog.String("bot_id", bot.ID.String()),
		slog.String("display_name", bot.DisplayName),
		slog.String("gender", bot.Metadata.Gender.String()),
	)
	return bot, true
}

// email derives a unique address from the display name, e.g.
// "Ștefan Țurcanu" -> "stefan.turcanu.3f9a1c2b@<domain>".
func (s *Service) email(displayName string) string {
	local := domain.Slugify(displayName)
	if local == "" {
		local = "bot"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return local + "." + suffix + "@" + s.emailDomain
}

func randomPassword() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
