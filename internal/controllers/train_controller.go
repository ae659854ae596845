// -----------------------------------------------------------------------------
// Train Controller
// -----------------------------------------------------------------------------
// Train administration endpoints. Creation and deletion are mounted
// behind the admin role gate; lookups are available to every
// authenticated user.
// -----------------------------------------------------------------------------

package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/internal/services"
)

type TrainController struct {
	trainService *services.TrainService
}

func NewTrainController(trainService *services.TrainService) *TrainController {
	return &TrainController{trainService: trainService}
}

type createTrainRequest struct {
	TrainNumber   string `json:"train_number"`
	Name          string `json:"name"`
	DepartureDate string `json:"departure_date"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
}

type deleteTrainRequest struct {
	DepartureDate string `json:"departure_date"`
}

// Create handles POST /api/trains.
func (c *TrainController) Create(w http.ResponseWriter, r *http.Request) {
	var req createTrainRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	train := &models.Train{
		TrainNumber:   req.TrainNumber,
		Name:          req.Name,
		DepartureDate: req.DepartureDate,
		Origin:        req.Origin,
		Destination:   req.Destination,
	}

	if err := c.trainService.CreateTrain(train); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, train)
}

// Delete handles DELETE /api/trains/{number}. The departure date comes
// in the body; deletion matches both fields. A missing train is still
// a 204, per the idempotent delete policy.
func (c *TrainController) Delete(w http.ResponseWriter, r *http.Request) {
	trainNumber := mux.Vars(r)["number"]

	var req deleteTrainRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := c.trainService.DeleteTrain(r.Context(), trainNumber, req.DepartureDate); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/trains/{number}.
func (c *TrainController) Get(w http.ResponseWriter, r *http.Request) {
	trainNumber := mux.Vars(r)["number"]

	train, err := c.trainService.Find(trainNumber)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, train)
}

// Search handles GET /api/trains?origin=&destination=.
func (c *TrainController) Search(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")
	if origin == "" || destination == "" {
		respondError(w, http.StatusBadRequest, "origin and destination query parameters are required")
		return
	}

	trains, err := c.trainService.FindByRoute(origin, destination)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trains)
}
