// Package generator turns instruction prompts into short community content
// through a chat-completion back end.
package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/community-bots/internal/adapter/llm"
	"github.com/heartmarshall/community-bots/internal/config"
	"github.com/heartmarshall/community-bots/internal/metrics"
)

// SystemPrompt frames every completion.
const SystemPrompt = "Ești un român obișnuit care locuiește în Marea Britanie și postează casual pe rețelele sociale. " +
	"Scrii mereu în limba română, la persoana întâi, scurt și informal, ca un om real. " +
	"Nu folosi ghilimele în jurul răspunsului și nu explica ce faci."

// completer defines the completion back end needed by the generator.
type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
	Provider() string
}

// Service generates content. It never returns errors: any failure yields "".
type Service struct {
	log         *slog.Logger
	llm         completer
	metrics     *metrics.Metrics
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// NewService creates a generator using the tuning of cfg.
func NewService(logger *slog.Logger, c completer, m *metrics.Metrics, cfg config.LLMConfig) *Service {
	return &Service{
		log:         logger.With("service", "generator"),
		llm:         c,
		metrics:     m,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Generate sends prompt with the fixed system instruction and returns the
// trimmed completion text, or "" on any failure.
func (s *Service) Generate(ctx context.Context, prompt string) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.llm.Complete(ctx, llm.Request{
		System:      SystemPrompt,
		Prompt:      prompt,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	text = strings.TrimSpace(text)
	ok := err == nil && text != ""

	s.metrics.LLMRequest.
		WithLabelValues(s.llm.Provider(), metrics.Outcome(ok)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		s.log.WarnContext(ctx, "completion failed",
			slog.String("provider", s.llm.Provider()),
			slog.String("error", err.Error()),
		)
		return ""
	}
	if text == "" {
		s.log.WarnContext(ctx, "completion returned no text", slog.String("provider", s.llm.Provider()))
	}
	return text
}
