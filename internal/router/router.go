// -----------------------------------------------------------------------------
// Router
// -----------------------------------------------------------------------------
// Route table on gorilla/mux. Auth endpoints are public; everything
// else requires a bearer token, and train administration additionally
// requires the admin role.
// -----------------------------------------------------------------------------

package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Atomicx56/Railway-Resevration/internal/controllers"
	"github.com/Atomicx56/Railway-Resevration/internal/middleware"
	"github.com/Atomicx56/Railway-Resevration/pkg/auth"
)

// Deps are the handlers and policies the router wires together.
type Deps struct {
	Auth     *controllers.AuthController
	Trains   *controllers.TrainController
	Bookings *controllers.BookingController

	JWTConfig   *auth.JWTConfig
	RateLimiter *middleware.RateLimiter
}

// New builds the full route table.
func New(deps Deps) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Public.
	api.HandleFunc("/auth/signup", deps.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)

	// Authenticated.
	authed := api.NewRoute().Subrouter()
	authed.Use(mux.MiddlewareFunc(middleware.Auth(deps.JWTConfig)))

	authed.HandleFunc("/trains", deps.Trains.Search).Methods(http.MethodGet)
	authed.HandleFunc("/trains/{number}", deps.Trains.Get).Methods(http.MethodGet)
	authed.HandleFunc("/trains/{number}/seats", deps.Bookings.ListSeats).Methods(http.MethodGet)
	authed.HandleFunc("/trains/{number}/bookings", deps.Bookings.Book).Methods(http.MethodPost)
	authed.HandleFunc("/trains/{number}/bookings/{seat:[0-9]+}", deps.Bookings.Cancel).Methods(http.MethodDelete)

	// Admin only.
	admin := api.NewRoute().Subrouter()
	admin.Use(
		mux.MiddlewareFunc(middleware.Auth(deps.JWTConfig)),
		mux.MiddlewareFunc(middleware.RequireAdmin),
	)

	admin.HandleFunc("/trains", deps.Trains.Create).Methods(http.MethodPost)
	admin.HandleFunc("/trains/{number}", deps.Trains.Delete).Methods(http.MethodDelete)

	handler := middleware.Chain(r,
		middleware.PanicRecovery,
		middleware.Logging,
	)
	if deps.RateLimiter != nil {
		handler = deps.RateLimiter.Middleware(handler)
	}

	return handler
}
