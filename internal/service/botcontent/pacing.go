package botcontent

import (
	"context"
	"time"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// delay draws a uniform duration within the configured bounds.
func (s *Service) delay(d domain.DelayRange) time.Duration {
	lo, hi := d.Bounds()
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.deps.Rand.Float64()*float64(hi-lo))
}

// sleep waits for d on the service clock or until ctx is done.
func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.deps.Clock.After(d):
		return nil
	}
}

// schedule lists the kinds of every iteration in execution order.
func schedule(cfg domain.ContentConfig) []domain.ContentKind {
	var out []domain.ContentKind
	for _, kind := range domain.ContentKinds {
		for range cfg.Iterations(kind) {
			out = append(out, kind)
		}
	}
	return out
}
