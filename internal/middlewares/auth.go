package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
)

// APITokenHeader is the header carrying the shared-secret API token.
const APITokenHeader = "API-Token"

// TokenAuthMiddleware returns a middleware that rejects requests whose
// API-Token header does not exactly match the configured token. Rejection
// happens before any handler logic runs.
func TokenAuthMiddleware(expectedToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(APITokenHeader)
			if token != expectedToken {
				logger.Log.Warnw("authorization failed", "method", r.Method, "uri", r.RequestURI)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
