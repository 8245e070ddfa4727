// Package llm adapts hosted chat-completion APIs to one Completer contract.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/community-bots/internal/config"
)

// ErrEmptyCompletion is returned when a provider answers without any text.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// Request is a single-turn completion request.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer sends one prompt and returns the raw completion text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Provider names the back end for logs and metrics.
	Provider() string
}

// New builds the Completer selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
