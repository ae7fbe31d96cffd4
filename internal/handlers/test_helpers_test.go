package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"aeroclub-backend/internal/config"
	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/repository"
	"aeroclub-backend/internal/services"
	"aeroclub-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores mirroring the repository semantics: ids assigned on
// create, ErrNotFound for unknown or malformed ids.

type memUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func (f *memUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *memUserStore) UpdateProfile(_ context.Context, id, privacy, profilePicture string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Privacy = privacy
			if profilePicture != "" {
				u.ProfilePicture = profilePicture
			}
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memEventStore struct {
	mu     sync.Mutex
	events []models.Event
}

func (f *memEventStore) Create(_ context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event.ID = primitive.NewObjectID()
	f.events = append(f.events, *event)
	return nil
}

func (f *memEventStore) List(_ context.Context) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Event{}, f.events...), nil
}

type memMediaStore struct {
	mu    sync.Mutex
	media []models.Media
}

func (f *memMediaStore) Create(_ context.Context, media *models.Media) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	media.ID = primitive.NewObjectID()
	f.media = append(f.media, *media)
	return nil
}

func (f *memMediaStore) List(_ context.Context) ([]models.Media, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Media{}, f.media...), nil
}

type memTipStore struct {
	mu   sync.Mutex
	tips []models.Tip
}

func (f *memTipStore) Create(_ context.Context, tip *models.Tip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tip.ID = primitive.NewObjectID()
	f.tips = append(f.tips, *tip)
	return nil
}

func (f *memTipStore) List(_ context.Context) ([]models.Tip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Tip{}, f.tips...), nil
}

type memMessageStore struct {
	mu       sync.Mutex
	messages []models.Message
}

func (f *memMessageStore) Create(_ context.Context, message *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	message.ID = primitive.NewObjectID()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *memMessageStore) List(_ context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Message{}, f.messages...), nil
}

type testEnv struct {
	server   *httptest.Server
	hub      *services.FeedHub
	users    *memUserStore
	events   *memEventStore
	media    *memMediaStore
	tips     *memTipStore
	messages *memMessageStore
}

// newTestEnv assembles the full route layer over in-memory stores and a real
// disk upload store in a temp directory, mirroring the wiring in cmd.Run.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	uploads, err := storage.NewDiskStore(config.DiskConfig{Dir: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)

	env := &testEnv{
		users:    &memUserStore{},
		events:   &memEventStore{},
		media:    &memMediaStore{},
		tips:     &memTipStore{},
		messages: &memMessageStore{},
	}

	userService := services.NewUserService(env.users, uploads, "test-secret")
	eventService := services.NewEventService(env.events)
	mediaService := services.NewMediaService(env.media, uploads)
	tipService := services.NewTipService(env.tips)
	messageService := services.NewMessageService(env.messages)
	hub := services.NewFeedHub()
	env.hub = hub

	userHandler := NewUserHandler(userService)
	eventHandler := NewEventHandler(eventService)
	mediaHandler := NewMediaHandler(mediaService)
	tipHandler := NewTipHandler(tipService)
	messageHandler := NewMessageHandler(messageService, hub)
	feedHandler := NewFeedHandler(hub, userService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Post("/users/login", userHandler.Login)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Put("/users/{id}", userHandler.UpdateUser)
		r.Get("/events", eventHandler.ListEvents)
		r.Post("/events", eventHandler.CreateEvent)
		r.Get("/media", mediaHandler.ListMedia)
		r.Post("/media", mediaHandler.UploadMedia)
		r.Get("/tips", tipHandler.ListTips)
		r.Post("/tips", tipHandler.CreateTip)
		r.Get("/messages", messageHandler.ListMessages)
		r.Post("/messages", messageHandler.PostMessage)
	})
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir())))
	r.Get("/uploads/*", fileServer.ServeHTTP)
	r.Get("/ws/feed", feedHandler.HandleFeed)

	env.server = httptest.NewServer(r)
	t.Cleanup(env.server.Close)

	return env
}

// multipartBody builds a multipart body with an optional file part.
func multipartBody(t *testing.T, fileField, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}
