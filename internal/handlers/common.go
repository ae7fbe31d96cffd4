package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aeroclub-backend/internal/repository"
	"aeroclub-backend/internal/services"
	"aeroclub-backend/internal/storage"
)

// MessageResponse carries acknowledgments and error messages. The message
// key matches what the mobile client displays.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, MessageResponse{Message: message})
}

// respondMappedError translates service and storage failures into an HTTP
// status plus a client-facing message. Anything unrecognized is a 500.
func respondMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrConflict):
		respondError(w, "Username or email already exists", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, "Invalid credentials", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrUpload):
		respondError(w, "Upload failed", http.StatusInternalServerError)
	default:
		respondError(w, "Internal server error", http.StatusInternalServerError)
	}
}
