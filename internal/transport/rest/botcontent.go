package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/internal/service/botcontent"
	"github.com/heartmarshall/community-bots/pkg/ctxutil"
)

type contentRunner interface {
	Run(ctx context.Context) (botcontent.Outcome, error)
}

// BotContentHandler exposes one generator invocation per POST.
type BotContentHandler struct {
	runner contentRunner
	log    *slog.Logger
}

// NewBotContentHandler creates a BotContentHandler.
func NewBotContentHandler(runner contentRunner, logger *slog.Logger) *BotContentHandler {
	return &BotContentHandler{
		runner: runner,
		log:    logger.With("handler", "botcontent"),
	}
}

// RunResponse is the JSON body of a completed or early-exited invocation.
type RunResponse struct {
	Success bool            `json:"success,omitempty"`
	Results *domain.Results `json:"results,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Response maps an invocation result to its HTTP status and body.
// Shared by the HTTP handler and the CLI so both report identically.
func Response(out botcontent.Outcome, err error) (int, any) {
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		return http.StatusConflict, RunResponse{Message: botcontent.MessageAlreadyRunning}
	case err != nil:
		return http.StatusInternalServerError, map[string]string{"error": err.Error()}
	case out.Completed():
		return http.StatusOK, RunResponse{Success: true, Results: out.Results}
	default:
		return http.StatusOK, RunResponse{Message: out.Message}
	}
}

// Invoke handles POST /functions/v1/bot-content.
func (h *BotContentHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	caller, _ := ctxutil.CallerFromCtx(ctx)
	h.log.InfoContext(ctx, "invocation started",
		slog.String("caller", caller.Subject),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	// The run outlives its trigger; a dropped connection does not stop it.
	out, err := h.runner.Run(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, domain.ErrRunInProgress) {
		h.log.ErrorContext(ctx, "invocation failed", slog.String("error", err.Error()))
	}

	status, body := Response(out, err)
	writeJSON(w, status, body)
}
