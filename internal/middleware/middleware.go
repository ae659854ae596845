// -----------------------------------------------------------------------------
// Middleware Package
// -----------------------------------------------------------------------------
// Cross-cutting HTTP concerns: request logging, panic recovery,
// authentication, role gating and rate limiting. A middleware wraps an
// http.Handler and returns a new one.
// -----------------------------------------------------------------------------

package middleware

import (
	"log"
	"net/http"
	"time"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(next http.Handler) http.Handler

// Chain applies middlewares to h so that the first listed runs
// outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Logging records method, path and elapsed time for every request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
