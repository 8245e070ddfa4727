package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/community-bots/internal/adapter/llm"
	"github.com/heartmarshall/community-bots/internal/adapter/lock"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/activity"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/feed"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/forum"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/identity"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/profile"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/settings"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/template"
	"github.com/heartmarshall/community-bots/internal/auth"
	"github.com/heartmarshall/community-bots/internal/config"
	"github.com/heartmarshall/community-bots/internal/metrics"
	"github.com/heartmarshall/community-bots/internal/service/botcontent"
	"github.com/heartmarshall/community-bots/internal/service/botpool"
	"github.com/heartmarshall/community-bots/internal/service/generator"
	"github.com/heartmarshall/community-bots/internal/transport/middleware"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

// App owns the process-wide resources and the wired generator.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	rdb     *redis.Client
	metrics *metrics.Metrics
	limiter *middleware.RateLimiter

	Content  *botcontent.Service
	Bots     *botpool.Service
	Settings *settings.Repo
	Activity *activity.Repo
	Profiles *profile.Repo
	Feed     *feed.Repo
	JWT      *auth.JWTManager
}

// New connects to the database (and Redis when the lock backend needs it)
// and wires every service. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		pool:    pool,
		metrics: metrics.New(),
		JWT:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
	}

	if cfg.Lock.Backend == config.LockRedis {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.rdb.Ping(ctx).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
	}

	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	completer, err := llm.New(ctx, a.cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm client: %w", err)
	}

	locker, err := lock.New(a.cfg.Lock, a.pool, a.rdb)
	if err != nil {
		return err
	}

	var (
		clock = clockwork.NewRealClock()
		rnd   = randsrc.New()
		txm   = postgres.NewTxManager(a.pool)
	)

	a.Settings = settings.New(a.pool)
	a.Activity = activity.New(a.pool)
	a.Profiles = profile.New(a.pool)
	a.Feed = feed.New(a.pool)

	catalog, err := botpool.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("persona catalog: %w", err)
	}

	a.Bots = botpool.NewService(
		a.logger,
		a.Profiles,
		identity.New(a.pool),
		txm,
		catalog,
		rnd,
		clock,
		a.metrics,
		a.cfg.Bots.EmailDomain,
	)

	gen := generator.NewService(a.logger, completer, a.metrics, a.cfg.LLM)

	a.Content = botcontent.NewService(a.logger, botcontent.Deps{
		Settings:  a.Settings,
		Pool:      a.Bots,
		Templates: template.New(a.pool),
		Feed:      a.Feed,
		Forum:     forum.New(a.pool),
		Activity:  a.Activity,
		Generator: gen,
		Tx:        txm,
		Locker:    locker,
		Rand:      rnd,
		Clock:     clock,
		Metrics:   a.metrics,
	}, botcontent.Options{
		Location:         a.cfg.Bots.Location,
		RecentLimit:      a.cfg.Bots.RecentLimit,
		TemplateFallback: a.cfg.Bots.TemplateFallback,
	})

	a.logger.Info("generator wired",
		slog.String("llm_provider", completer.Provider()),
		slog.String("llm_model", a.cfg.LLM.Model),
		slog.String("lock_backend", a.cfg.Lock.Backend),
	)

	return nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases the database pool, the Redis client and the rate limiter.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
