package handlers

import (
	"encoding/json"
	"net/http"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// TipHandler handles tip-related HTTP requests
type TipHandler struct {
	tipService *services.TipService
}

// NewTipHandler creates a new tip handler
func NewTipHandler(tipService *services.TipService) *TipHandler {
	return &TipHandler{
		tipService: tipService,
	}
}

// ListTips handles GET /api/tips
func (h *TipHandler) ListTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tips")
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tips)
}

// CreateTip handles POST /api/tips
func (h *TipHandler) CreateTip(w http.ResponseWriter, r *http.Request) {
	var tip models.Tip
	if err := json.NewDecoder(r.Body).Decode(&tip); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tipService.Create(r.Context(), &tip); err != nil {
		log.Error().Err(err).Str("user_id", tip.UserID).Msg("Failed to create tip")
		respondMappedError(w, err)
		return
	}

	log.Info().Str("tip_id", tip.ID.Hex()).Str("category", tip.Category).Msg("Tip created")
	respondJSON(w, http.StatusCreated, tip)
}
