package services

import (
	"context"
	"strings"
	"testing"

	"aeroclub-backend/internal/repository"
	"aeroclub-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(store *fakeUserStore, uploads *fakeUploads) *UserService {
	return NewUserService(store, uploads, "test-secret")
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := newUserService(store, &fakeUploads{})

	err := svc.Register(context.Background(), "alice", "a@x.com", "p1")
	require.NoError(t, err)

	require.Len(t, store.users, 1)
	stored := store.users[0]
	assert.False(t, stored.ID.IsZero())
	assert.Equal(t, "public", stored.Privacy)
	assert.NotEqual(t, "p1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("p1")))
}

func TestRegisterDuplicate(t *testing.T) {
	store := &fakeUserStore{}
	svc := newUserService(store, &fakeUploads{})

	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "p1"))

	// same username, different email
	err := svc.Register(context.Background(), "alice", "other@x.com", "p2")
	assert.ErrorIs(t, err, ErrConflict)

	// and again: the conflict is stable, not first-call-only
	err = svc.Register(context.Background(), "alice", "third@x.com", "p3")
	assert.ErrorIs(t, err, ErrConflict)

	// same email, different username
	err = svc.Register(context.Background(), "bob", "a@x.com", "p4")
	assert.ErrorIs(t, err, ErrConflict)

	assert.Len(t, store.users, 1)
}

func TestLogin(t *testing.T) {
	store := &fakeUserStore{}
	svc := newUserService(store, &fakeUploads{})
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "p1"))

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "mallory", "p1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), "alice", "p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.ID.IsZero())

		userID, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), userID)
	})
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newUserService(&fakeUserStore{}, &fakeUploads{})

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	store := &fakeUserStore{}
	uploads := &fakeUploads{}
	svc := newUserService(store, uploads)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "p1"))
	id := store.users[0].ID.Hex()

	t.Run("privacy only", func(t *testing.T) {
		user, err := svc.UpdateProfile(context.Background(), id, "members_only", nil, "")
		require.NoError(t, err)
		assert.Equal(t, "members_only", user.Privacy)
		assert.Empty(t, user.ProfilePicture)
		assert.Empty(t, uploads.saved)
	})

	t.Run("with picture", func(t *testing.T) {
		user, err := svc.UpdateProfile(context.Background(), id, "public", strings.NewReader("img"), "me.png")
		require.NoError(t, err)
		assert.Equal(t, "public", user.Privacy)
		assert.Equal(t, "https://cdn.test/me.png", user.ProfilePicture)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), "64b000000000000000000000", "public", nil, "")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("upload failure leaves record untouched", func(t *testing.T) {
		failing := newUserService(store, &fakeUploads{fail: true})
		_, err := failing.UpdateProfile(context.Background(), id, "members_only", strings.NewReader("img"), "me.png")
		assert.ErrorIs(t, err, storage.ErrUpload)
		assert.Equal(t, "public", store.users[0].Privacy)
	})
}
