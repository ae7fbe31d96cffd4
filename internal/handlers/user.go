package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRequest is the body of POST /api/users/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/users/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the user's public fields plus a session token for the
// live feed. The password hash is never serialized.
type LoginResponse struct {
	models.User
	Token string `json:"token"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		if !errors.Is(err, services.ErrConflict) {
			log.Error().Err(err).Str("username", req.Username).Msg("Failed to register user")
		}
		respondMappedError(w, err)
		return
	}

	log.Info().Str("username", req.Username).Msg("User registered")
	respondJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("User logged in")
	respondJSON(w, http.StatusOK, LoginResponse{User: *user, Token: token})
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/{id}. The body is multipart: an optional
// profile_picture file and a privacy value that is applied unconditionally.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	var (
		file     io.Reader
		filename string
	)
	formFile, header, err := r.FormFile("profile_picture")
	switch {
	case err == nil:
		defer formFile.Close()
		file = formFile
		filename = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// picture is optional
	default:
		respondError(w, "Invalid profile picture", http.StatusBadRequest)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), id, r.FormValue("privacy"), file, filename)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		respondMappedError(w, err)
		return
	}

	log.Info().Str("user_id", id).Msg("User updated")
	respondJSON(w, http.StatusOK, user)
}
