package services

import (
	"context"
	"fmt"

	"aeroclub-backend/internal/models"
)

// EventStore defines the persistence operations the event service needs.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context) ([]models.Event, error)
}

// EventService handles club events
type EventService struct {
	events EventStore
}

// NewEventService creates a new event service
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// Create persists a new event. Field validation is client-enforced only.
func (s *EventService) Create(ctx context.Context, event *models.Event) error {
	if err := s.events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// List retrieves all events
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}
