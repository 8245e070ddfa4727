package app

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/community-bots/internal/transport/middleware"
	"github.com/heartmarshall/community-bots/internal/transport/rest"
)

// FunctionPath is the route of the generator invocation.
const FunctionPath = "/functions/v1/bot-content"

const rateLimitCleanup = 5 * time.Minute

// Handler builds the HTTP routes. CORS wraps the whole mux so preflight
// requests get 204 on any path. The rate limiter, when enabled, is stopped by Close.
func (a *App) Handler() http.Handler {
	checks := []rest.Check{{Name: "database", Ping: a.pool.Ping}}
	if a.rdb != nil {
		checks = append(checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return a.rdb.Ping(ctx).Err() },
		})
	}

	health := rest.NewHealthHandler(BuildVersion(), checks...)
	content := rest.NewBotContentHandler(a.Content, a.logger)

	var limit middleware.Middleware
	if a.cfg.Server.RateLimitPerMin > 0 {
		if a.limiter == nil {
			a.limiter = middleware.NewRateLimiter(rateLimitCleanup)
		}
		limit = a.limiter.Limit(a.cfg.Server.RateLimitPerMin)
	}

	function := middleware.Chain(
		limit,
		middleware.Auth(a.JWT, a.cfg.Auth, a.logger),
	)

	mux := http.NewServeMux()
	mux.Handle(FunctionPath, function(http.HandlerFunc(content.Invoke)))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", a.metrics.Handler())

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(a.logger),
		middleware.Recovery(a.logger),
		middleware.CORS(a.cfg.CORS),
	)(mux)
}
