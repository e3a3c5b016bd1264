package middleware

import (
	"net/http"

	"github.com/hunkymanie/shoply/internal/auth"
)

// RequireSession rejects requests when no session is active and otherwise
// populates the request context with the session's user snapshot.
func RequireSession(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := manager.CurrentUser()
			if user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := auth.WithUser(r.Context(), *user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
