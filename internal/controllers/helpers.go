package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondDomainError maps a domain error to its HTTP status. Unknown
// errors become a 500 with a generic message so internals never leak.
func respondDomainError(w http.ResponseWriter, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case models.KindNotFound:
		status = http.StatusNotFound
	case models.KindConflict, models.KindCapacity:
		status = http.StatusConflict
	case models.KindValidation:
		status = http.StatusUnprocessableEntity
	case models.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  appErr.Code,
	})
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
