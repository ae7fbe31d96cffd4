package services

import (
	"encoding/json"
	"sync"

	"aeroclub-backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// FeedEvent is the envelope pushed to live feed subscribers
type FeedEvent struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message,omitempty"`
}

// FeedHub fans newly posted chat messages out to connected WebSocket
// clients. Connections are keyed by user id; a reconnect replaces the
// previous connection.
type FeedHub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

// NewFeedHub creates a new feed hub
func NewFeedHub() *FeedHub {
	return &FeedHub{
		connections: make(map[string]*websocket.Conn),
	}
}

// Register registers a WebSocket connection for a user
func (h *FeedHub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.connections[userID]; ok {
		existing.Close()
	}
	h.connections[userID] = conn

	log.Info().Str("user_id", userID).Msg("Feed connection registered")
}

// Unregister removes a user's WebSocket connection
func (h *FeedHub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.connections[userID]; ok {
		conn.Close()
		delete(h.connections, userID)
		log.Info().Str("user_id", userID).Msg("Feed connection unregistered")
	}
}

// Subscribers returns the number of connected clients
func (h *FeedHub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// BroadcastMessage pushes a new chat message to every connected client.
// Connections that fail to write are dropped.
func (h *FeedHub) BroadcastMessage(message *models.Message) {
	data, err := json.Marshal(FeedEvent{Type: "message", Message: message})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal feed event")
		return
	}

	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mu.RUnlock()

	for userID, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Dropping stale feed connection")
			h.Unregister(userID)
		}
	}
}
