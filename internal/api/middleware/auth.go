package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/cloudnexus/task-api/internal/api/shared"
)

// bearerPrefix is the expected Authorization scheme for the static token.
const bearerPrefix = "Bearer "

// RequireAPIToken returns middleware enforcing the shared static API token
// on the routes it wraps. The comparison is constant-time. Callers must not
// mount it when the token is unconfigured; an empty expected token would
// otherwise lock every request out.
func RequireAPIToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Missing API token")
				return
			}

			presented := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid API token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
