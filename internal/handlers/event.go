package handlers

import (
	"encoding/json"
	"net/http"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list events")
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.eventService.Create(r.Context(), &event); err != nil {
		log.Error().Err(err).Str("name", event.Name).Msg("Failed to create event")
		respondMappedError(w, err)
		return
	}

	log.Info().Str("event_id", event.ID.Hex()).Str("name", event.Name).Msg("Event created")
	respondJSON(w, http.StatusCreated, event)
}
