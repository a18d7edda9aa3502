package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/app/media"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// sendJSON writes data as a JSON response with the given status
func sendJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes the uniform error body used across the whole API
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, map[string]string{"error": message}, status)
}

// sendServiceError maps a service-layer error to its HTTP status.
// notFoundMessage replaces the bare sentinel's text when the error is a
// missing record.
func sendServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, notFoundMessage, http.StatusNotFound)
	case errors.As(err, &validationErr), errors.As(err, &conflictErr):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, media.ErrFileType), errors.Is(err, media.ErrFileTooLarge):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}
