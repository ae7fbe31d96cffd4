package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/repository"
	"aeroclub-backend/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore is an in-memory UserStore mirroring the repository's
// id-assignment and not-found semantics.
type fakeUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
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

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
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

func (f *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id, privacy, profilePicture string) (*models.User, error) {
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

type fakeMediaStore struct {
	mu    sync.Mutex
	media []models.Media
}

func (f *fakeMediaStore) Create(_ context.Context, media *models.Media) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	media.ID = primitive.NewObjectID()
	f.media = append(f.media, *media)
	return nil
}

func (f *fakeMediaStore) List(_ context.Context) ([]models.Media, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Media{}, f.media...), nil
}

type fakeMessageStore struct {
	mu       sync.Mutex
	messages []models.Message
}

func (f *fakeMessageStore) Create(_ context.Context, message *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	message.ID = primitive.NewObjectID()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageStore) List(_ context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Message{}, f.messages...), nil
}

// fakeUploads records saves and hands back deterministic URLs.
type fakeUploads struct {
	mu    sync.Mutex
	saved []string
	fail  bool
}

func (f *fakeUploads) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if f.fail {
		return "", fmt.Errorf("%w: simulated transfer failure", storage.ErrUpload)
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, filename)
	return "https://cdn.test/" + filename, nil
}
