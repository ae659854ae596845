// -----------------------------------------------------------------------------
// Booking Controller
// -----------------------------------------------------------------------------

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/internal/services"
)

type BookingController struct {
	bookingService *services.BookingService
}

func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

type bookRequest struct {
	Category  string `json:"category"`
	Passenger struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		Gender string `json:"gender"`
	} `json:"passenger"`
}

// Book handles POST /api/trains/{number}/bookings.
func (c *BookingController) Book(w http.ResponseWriter, r *http.Request) {
	trainNumber := mux.Vars(r)["number"]

	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	passenger := &models.Passenger{
		Name:   req.Passenger.Name,
		Age:    req.Passenger.Age,
		Gender: models.Gender(req.Passenger.Gender),
	}

	confirmation, err := c.bookingService.Book(r.Context(), trainNumber, models.SeatCategory(req.Category), passenger)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, confirmation)
}

// Cancel handles DELETE /api/trains/{number}/bookings/{seat}.
// Cancelling a free seat succeeds with no state change.
func (c *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainNumber := vars["number"]

	seatNumber, err := strconv.Atoi(vars["seat"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "seat number must be an integer")
		return
	}

	if err := c.bookingService.Cancel(r.Context(), trainNumber, seatNumber); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSeats handles GET /api/trains/{number}/seats.
func (c *BookingController) ListSeats(w http.ResponseWriter, r *http.Request) {
	trainNumber := mux.Vars(r)["number"]

	seats, err := c.bookingService.ListSeats(r.Context(), trainNumber)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, seats)
}
