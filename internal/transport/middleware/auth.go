package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/community-bots/internal/config"
	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/pkg/ctxutil"
)

// disabledCaller is attached to requests when authentication is switched off.
var disabledCaller = ctxutil.Caller{Subject: "local", Role: "auth_disabled"}

type tokenValidator interface {
	ValidateAccessToken(token string) (subject string, role string, err error)
}

// Auth requires a bearer token whose role is in cfg's allow-list.
// A missing or invalid token yields 401, a disallowed role 403, both with
// a JSON {"error": ...} body. With cfg.Disabled every request passes as a
// local caller. Preflight requests are never checked.
func Auth(validator tokenValidator, cfg config.AuthConfig, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := authenticate(r, validator, cfg)
			if err != nil {
				status := http.StatusUnauthorized
				if errors.Is(err, domain.ErrForbidden) {
					status = http.StatusForbidden
				}
				logger.WarnContext(r.Context(), "request rejected",
					slog.Int("status", status),
					slog.String("error", err.Error()),
				)
				writeAuthError(w, status)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithCaller(r.Context(), caller)))
		})
	}
}

func authenticate(r *http.Request, validator tokenValidator, cfg config.AuthConfig) (ctxutil.Caller, error) {
	if cfg.Disabled {
		return disabledCaller, nil
	}

	token := extractBearerToken(r)
	if token == "" {
		return ctxutil.Caller{}, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}
	subject, role, err := validator.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Caller{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !cfg.IsRoleAllowed(role) {
		return ctxutil.Caller{}, fmt.Errorf("subject %q role %q: %w", subject, role, domain.ErrForbidden)
	}
	return ctxutil.Caller{Subject: subject, Role: role}, nil
}

func writeAuthError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": strings.ToLower(http.StatusText(status)),
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
