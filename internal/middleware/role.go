package middleware

import (
	"net/http"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

// RequireAdmin gates train administration endpoints. Must run inside
// Auth, which puts the claims on the context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if claims.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
