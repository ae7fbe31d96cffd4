package services

import (
	"context"
	"fmt"
	"time"

	"aeroclub-backend/internal/models"
)

// MessageStore defines the persistence operations the message service needs.
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
}

// MessageService handles the chat feed
type MessageService struct {
	messages MessageStore
}

// NewMessageService creates a new message service
func NewMessageService(messages MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

// Post persists a new chat message with a server-assigned timestamp
func (s *MessageService) Post(ctx context.Context, user, text string) (*models.Message, error) {
	message := &models.Message{
		User:      user,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// List retrieves the whole feed
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messages.List(ctx)
}
