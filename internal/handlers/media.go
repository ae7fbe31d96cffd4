package handlers

import (
	"net/http"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/services"

	"github.com/rs/zerolog/log"
)

const maxUploadSize = 50 << 20 // 50MB

// MediaHandler handles media-related HTTP requests
type MediaHandler struct {
	mediaService *services.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// ListMedia handles GET /api/media
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.mediaService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list media")
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, media)
}

// UploadMedia handles POST /api/media. The multipart body must carry the
// file under the "media" field; event_id and albumId pass through unchecked.
func (h *MediaHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "No file uploaded", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		respondError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	media := &models.Media{
		UserID:      r.FormValue("user_id"),
		Description: r.FormValue("description"),
		EventID:     r.FormValue("event_id"),
		Privacy:     r.FormValue("privacy"),
		AlbumID:     r.FormValue("albumId"),
	}

	if err := h.mediaService.Upload(r.Context(), header.Filename, file, media); err != nil {
		log.Error().
			Err(err).
			Str("user_id", media.UserID).
			Str("filename", header.Filename).
			Msg("Failed to upload media")
		respondMappedError(w, err)
		return
	}

	log.Info().
		Str("media_id", media.ID.Hex()).
		Str("user_id", media.UserID).
		Str("url", media.URL).
		Msg("Media uploaded")
	respondJSON(w, http.StatusCreated, media)
}
