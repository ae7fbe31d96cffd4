package handlers

import (
	"net/http"

	"aeroclub-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // mobile clients connect from arbitrary origins
	},
}

// FeedHandler upgrades clients onto the live chat feed
type FeedHandler struct {
	hub         *services.FeedHub
	userService *services.UserService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(hub *services.FeedHub, userService *services.UserService) *FeedHandler {
	return &FeedHandler{
		hub:         hub,
		userService: userService,
	}
}

// HandleFeed handles GET /ws/feed. The session token issued at login is
// passed as a query parameter; the REST API itself stays public.
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	userID, err := h.userService.ValidateToken(token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to upgrade feed connection")
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	// The feed is push-only; drain client frames until the connection drops.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
