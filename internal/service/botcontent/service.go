// Package botcontent runs one bot content invocation: it checks the enable
// flag, tops up the bot pool and drives the four generation pipelines with
// paced, randomized iterations.
package botcontent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/community-bots/internal/adapter/lock"
	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/internal/metrics"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// settingsRepo reads app_settings rows.
type settingsRepo interface {
	GetBool(ctx context.Context, key string) (bool, error)
	GetJSON(ctx context.Context, key string, dst any) error
}

// botPool tops up and returns the synthetic members.
type botPool interface {
	EnsurePool(ctx context.Context, n int) ([]domain.BotProfile, error)
}

// templateRepo reads the phrase template catalog.
type templateRepo interface {
	ListActive(ctx context.Context) ([]domain.ContentTemplate, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// feedRepo persists feed posts and comments.
type feedRepo interface {
	CreatePost(ctx context.Context, p domain.FeedPost) (domain.FeedPost, error)
	ListRecentPosts(ctx context.Context, limit int) ([]domain.FeedPost, error)
	CreateComment(ctx context.Context, c domain.FeedComment) (domain.FeedComment, error)
}

// forumRepo persists forum topics and replies.
type forumRepo interface {
	ListActiveCategories(ctx context.Context) ([]domain.ForumCategory, error)
	CreatePost(ctx context.Context, p domain.ForumPost) (domain.ForumPost, error)
	ListRecentPosts(ctx context.Context, limit int) ([]domain.ForumPost, error)
	CreateReply(ctx context.Context, r domain.ForumReply) (domain.ForumReply, error)
}

// activityLogger appends bot_activity_log rows.
type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityLogEntry) error
}

// contentGenerator returns completion text or "" on failure.
type contentGenerator interface {
	Generate(ctx context.Context, prompt string) string
}

// txManager defines the transaction manager interface needed by the pipelines.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// runLocker guards against overlapping invocations.
type runLocker interface {
	TryLock(ctx context.Context) (lock.Release, error)
}

// Deps are the collaborators of a Service.
type Deps struct {
	Settings  settingsRepo
	Pool      botPool
	Templates templateRepo
	Feed      feedRepo
	Forum     forumRepo
	Activity  activityLogger
	Generator contentGenerator
	Tx        txManager
	Locker    runLocker
	Rand      randsrc.Source
	Clock     clockwork.Clock
	Metrics   *metrics.Metrics
}

// Options are process-level knobs.
type Options struct {
	// Location is the zone active hours are evaluated in.
	Location *time.Location
	// RecentLimit caps how many recent topics or posts a reply or comment
	// may target.
	RecentLimit int
	// TemplateFallback fills a phrase template when the model returns nothing.
	TemplateFallback bool
}

// Service implements the bot content invocation.
type Service struct {
	log  *slog.Logger
	deps Deps
	opts Options
}

// NewService creates a new bot content service.
func NewService(logger *slog.Logger, deps Deps, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 20
	}
	return &Service{
		log:  logger.With("service", "botcontent"),
		deps: deps,
		opts: opts,
	}
}
