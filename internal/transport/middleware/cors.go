package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/community-bots/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing and
// answers preflight OPTIONS requests with 204.
//
// A "*" origin without credentials is sent literally on every response, so
// browser callers work without an Origin round trip. Otherwise matching
// origins are echoed back with Vary: Origin.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := make(map[string]bool)
	wildcard := false
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			allowed[o] = true
		}
	}
	literalWildcard := wildcard && !cfg.AllowCredentials
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")

			switch {
			case literalWildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			case origin != "" && (wildcard || allowed[origin]):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
