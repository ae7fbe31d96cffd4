package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenExpDays = 365

var (
	// ErrConflict indicates the username or email is already taken.
	ErrConflict = errors.New("username or email already exists")
	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore defines the persistence operations the user service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id, privacy, profilePicture string) (*models.User, error)
}

// UserService handles account registration, login and profile updates
type UserService struct {
	users     UserStore
	uploads   storage.Store
	jwtSecret string
}

// NewUserService creates a new user service
func NewUserService(users UserStore, uploads storage.Store, jwtSecret string) *UserService {
	return &UserService{
		users:     users,
		uploads:   uploads,
		jwtSecret: jwtSecret,
	}
}

// Register stores a new user with a bcrypt-hashed password. The duplicate
// check is a pre-check, not a store constraint, matching last-write-wins
// semantics elsewhere.
func (s *UserService) Register(ctx context.Context, username, email, password string) error {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Privacy:  models.PrivacyPublic,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns the user together with a signed
// session token. The token only gates the live feed; REST routes stay public.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Get retrieves a user by id
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile updates privacy unconditionally and, when a file is present,
// runs it through the upload adapter first and stores the resulting URL.
func (s *UserService) UpdateProfile(ctx context.Context, id, privacy string, file io.Reader, filename string) (*models.User, error) {
	pictureURL := ""
	if file != nil {
		url, err := s.uploads.Save(ctx, filename, file)
		if err != nil {
			return nil, err
		}
		pictureURL = url
	}

	return s.users.UpdateProfile(ctx, id, privacy, pictureURL)
}

// GenerateToken generates a signed JWT for a user
func (s *UserService) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().AddDate(0, 0, tokenExpDays).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT and returns the user id it was issued for
func (s *UserService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in token")
	}
	return userID, nil
}
