package botcontent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/internal/metrics"
)

// Early-exit messages reported with HTTP 200.
const (
	MessageDisabled       = "Bot system is disabled"
	MessageNoTemplates    = "No active templates found"
	MessageOutsideHours   = "outside active hours"
	MessageNoBots         = "No bots available"
	MessageAlreadyRunning = "bot content generation already running"
)

// Run outcome labels.
const (
	outcomeCompleted    = "completed"
	outcomeDisabled     = "disabled"
	outcomeNoTemplates  = "no_templates"
	outcomeOutsideHours = "outside_hours"
	outcomeNoBots       = "no_bots"
	outcomeLocked       = "locked"
	outcomeError        = "error"
)

// Outcome is the result of one invocation: either an early-exit Message or
// the Results tally of a completed run.
type Outcome struct {
	Message string
	Results *domain.Results
}

// Completed reports whether the pipelines ran.
func (o Outcome) Completed() bool { return o.Results != nil }

// Run performs one invocation. Benign early exits come back as an Outcome
// with a Message. A held run lock yields domain.ErrRunInProgress.
func (s *Service) Run(ctx context.Context) (Outcome, error) {
	out, label, err := s.run(ctx)
	if err != nil && !errors.Is(err, domain.ErrRunInProgress) {
		label = outcomeError
	}
	s.deps.Metrics.Runs.WithLabelValues(label).Inc()
	return out, err
}

func (s *Service) run(ctx context.Context) (Outcome, string, error) {
	enabled, err := s.deps.Settings.GetBool(ctx, domain.SettingBotSystemEnabled)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, "", fmt.Errorf("read %s: %w", domain.SettingBotSystemEnabled, err)
	}
	if !enabled {
		s.log.InfoContext(ctx, "bot system disabled")
		return Outcome{Message: MessageDisabled}, outcomeDisabled, nil
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return Outcome{}, "", err
	}
	if !cfg.Enabled {
		s.log.InfoContext(ctx, "bot content config disabled")
		return Outcome{Message: MessageDisabled}, outcomeDisabled, nil
	}

	now := s.deps.Clock.Now().In(s.opts.Location)
	if !cfg.ActiveHours.Contains(now) {
		s.log.InfoContext(ctx, "outside active hours",
			slog.Int("hour", now.Hour()),
			slog.Int("start", cfg.ActiveHours.Start),
			slog.Int("end", cfg.ActiveHours.End),
		)
		return Outcome{Message: MessageOutsideHours}, outcomeOutsideHours, nil
	}

	release, err := s.deps.Locker.TryLock(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			s.log.WarnContext(ctx, "another invocation holds the run lock")
			return Outcome{Message: MessageAlreadyRunning}, outcomeLocked, err
		}
		return Outcome{}, "", fmt.Errorf("acquire run lock: %w", err)
	}
	defer func() {
		// The caller's context may already be cancelled; the lock must still go.
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log.ErrorContext(ctx, "release run lock", slog.String("error", err.Error()))
		}
	}()

	bots, err := s.deps.Pool.EnsurePool(ctx, cfg.BotCount)
	if err != nil {
		return Outcome{}, "", fmt.Errorf("ensure bot pool: %w", err)
	}
	if len(bots) == 0 {
		s.log.WarnContext(ctx, "bot pool is empty")
		return Outcome{Message: MessageNoBots}, outcomeNoBots, nil
	}

	templates, err := s.deps.Templates.ListActive(ctx)
	if err != nil {
		return Outcome{}, "", fmt.Errorf("list templates: %w", err)
	}
	if len(templates) == 0 {
		s.log.InfoContext(ctx, "no active templates")
		return Outcome{Message: MessageNoTemplates}, outcomeNoTemplates, nil
	}

	results, err := s.generate(ctx, &run{cfg: cfg, bots: bots, templates: templates})
	if err != nil {
		return Outcome{}, "", err
	}
	return Outcome{Results: &results}, outcomeCompleted, nil
}

// loadConfig reads the configuration snapshot, falling back to the defaults
// when the row is missing.
func (s *Service) loadConfig(ctx context.Context) (domain.ContentConfig, error) {
	cfg := domain.DefaultContentConfig()
	err := s.deps.Settings.GetJSON(ctx, domain.SettingBotContentConfig, &cfg)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "bot content config missing, using defaults")
		cfg = domain.DefaultContentConfig()
	case err != nil:
		return domain.ContentConfig{}, fmt.Errorf("read %s: %w", domain.SettingBotContentConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ContentConfig{}, fmt.Errorf("%s: %w", domain.SettingBotContentConfig, err)
	}
	return cfg, nil
}

// generate runs every scheduled iteration in order, pausing between
// iterations. Failed iterations only skip their counter.
func (s *Service) generate(ctx context.Context, r *run) (domain.Results, error) {
	var results domain.Results
	plan := schedule(r.cfg)

	s.log.InfoContext(ctx, "generation started",
		slog.Int("bots", len(r.bots)),
		slog.Int("iterations", len(plan)),
	)

	for i, kind := range plan {
		ok := s.pipelineFor(kind)(ctx, r)
		if ok {
			results.Add(kind)
		}
		s.deps.Metrics.Items.WithLabelValues(kind.String(), metrics.Outcome(ok)).Inc()

		if i == len(plan)-1 {
			break
		}
		if err := s.sleep(ctx, s.delay(r.cfg.DelayMinutes)); err != nil {
			return results, fmt.Errorf("pacing interrupted after %d iterations: %w", i+1, err)
		}
	}

	s.log.InfoContext(ctx, "generation completed",
		slog.Int("posts_created", results.PostsCreated),
		slog.Int("forum_topics_created", results.ForumTopicsCreated),
		slog.Int("replies_created", results.RepliesCreated),
		slog.Int("comments_created", results.CommentsCreated),
	)
	return results, nil
}
