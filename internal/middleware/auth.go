// -----------------------------------------------------------------------------
// Authentication Middleware
// -----------------------------------------------------------------------------
// Validates the bearer token and stores the caller's identity in the
// request context. Caller identity always travels as an explicit
// request-scoped value; nothing reads it from ambient state.
// -----------------------------------------------------------------------------

package middleware

import (
	"context"
	"net/http"

	"github.com/Atomicx56/Railway-Resevration/pkg/auth"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// Auth returns middleware that rejects requests without a valid bearer
// token and otherwise attaches the token claims to the context.
func Auth(config *auth.JWTConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			token := auth.ExtractTokenFromHeader(authHeader)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "bearer token expected")
				return
			}

			claims, err := auth.ParseToken(token, config)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the authenticated caller's claims, if any.
func ClaimsFromContext(ctx context.Context) (*auth.JWTClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.JWTClaims)
	return claims, ok
}
