package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

func TestRespondDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"train not found", models.ErrTrainNotFound, http.StatusNotFound, "TRAIN_NOT_FOUND"},
		{"seat not found", models.ErrSeatNotFound, http.StatusNotFound, "SEAT_NOT_FOUND"},
		{"duplicate train", models.ErrDuplicateTrain, http.StatusConflict, "DUPLICATE_TRAIN"},
		{"already booked", models.ErrAlreadyBooked, http.StatusConflict, "ALREADY_BOOKED"},
		{"no available seat", models.ErrNoAvailableSeat, http.StatusConflict, "NO_AVAILABLE_SEAT"},
		{"invalid passenger", models.ErrInvalidPassenger, http.StatusUnprocessableEntity, "INVALID_PASSENGER"},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondDomainError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Expected a JSON body, got: %v", err)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, body["code"])
			}
		})
	}
}

func TestRespondDomainErrorWrapped(t *testing.T) {
	// Wrapped sentinels keep their mapping.
	wrapped := fmt.Errorf("%w: age must be positive", models.ErrInvalidPassenger)
	rec := httptest.NewRecorder()
	respondDomainError(rec, wrapped)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for a wrapped validation error, got %d", rec.Code)
	}
}

func TestRespondDomainErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	respondDomainError(rec, errors.New("driver: bad connection"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Expected a JSON body, got: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal details must not leak, got %q", body["error"])
	}
}
