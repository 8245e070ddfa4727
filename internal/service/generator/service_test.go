package generator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/community-bots/internal/adapter/llm"
	"github.com/heartmarshall/community-bots/internal/config"
	"github.com/heartmarshall/community-bots/internal/metrics"
)

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:    config.ProviderOpenAI,
		APIKey:      "k",
		Model:       "gpt-4o-mini",
		MaxTokens:   150,
		Temperature: 0.9,
		Timeout:     5 * time.Second,
	}
}

func TestGenerate_TrimsAndSendsTuning(t *testing.T) {
	t.Parallel()

	mock := &completerMock{
		CompleteFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return "\n  Azi am găsit un apartament în Leeds!  \n", nil
		},
	}
	m := metrics.New()
	svc := NewService(slog.Default(), mock, m, testLLMConfig())

	got := svc.Generate(context.Background(), "scrie ceva")

	assert.Equal(t, "Azi am găsit un apartament în Leeds!", got)
	require.Len(t, mock.CompleteCalls(), 1)
	req := mock.CompleteCalls()[0].Req
	assert.Equal(t, SystemPrompt, req.System)
	assert.Equal(t, "scrie ceva", req.Prompt)
	assert.Equal(t, 150, req.MaxTokens)
	assert.InDelta(t, 0.9, req.Temperature, 0.0001)

	_, hasDeadline := mock.CompleteCalls()[0].Ctx.Deadline()
	assert.True(t, hasDeadline, "timeout should bound the request")
	assert.Equal(t, 1, testutil.CollectAndCount(m.LLMRequest))
}

func TestGenerate_FailuresYieldEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "provider error", err: errors.New("connection refused")},
		{name: "empty completion", err: llm.ErrEmptyCompletion},
		{name: "whitespace only", text: "   \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := &completerMock{
				CompleteFunc: func(context.Context, llm.Request) (string, error) { return tt.text, tt.err },
			}
			svc := NewService(slog.Default(), mock, metrics.New(), testLLMConfig())
			assert.Equal(t, "", svc.Generate(context.Background(), "x"))
		})
	}
}

func TestGenerate_HTTP500_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded"}}`))
	}))
	t.Cleanup(srv.Close)

	cfg := testLLMConfig()
	cfg.BaseURL = srv.URL
	svc := NewService(slog.Default(), llm.NewOpenAI(cfg), metrics.New(), cfg)

	assert.Equal(t, "", svc.Generate(context.Background(), "scrie o postare"))
}

func TestGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	mock := &completerMock{
		CompleteFunc: func(ctx context.Context, _ llm.Request) (string, error) {
			return "", ctx.Err()
		},
	}
	svc := NewService(slog.Default(), mock, metrics.New(), testLLMConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, "", svc.Generate(ctx, "x"))
}
