package handlers

import (
	"encoding/json"
	"net/http"

	"aeroclub-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// MessageHandler handles chat feed HTTP requests
type MessageHandler struct {
	messageService *services.MessageService
	hub            *services.FeedHub
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService, hub *services.FeedHub) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		hub:            hub,
	}
}

// PostMessageRequest is the body of POST /api/messages
type PostMessageRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// ListMessages handles GET /api/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list messages")
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

// PostMessage handles POST /api/messages. The persisted message is also
// pushed to live feed subscribers.
func (h *MessageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.messageService.Post(r.Context(), req.User, req.Text)
	if err != nil {
		log.Error().Err(err).Str("user", req.User).Msg("Failed to post message")
		respondMappedError(w, err)
		return
	}

	h.hub.BroadcastMessage(message)

	respondJSON(w, http.StatusCreated, message)
}
