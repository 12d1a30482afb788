package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
)

// AdminTokenHeader carries the dashboard token on admin requests.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth rejects requests whose token header does not match the configured
// admin token. Comparison is constant time.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
