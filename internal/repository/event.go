package repository

import (
	"context"
	"fmt"

	"aeroclub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository handles document store operations for events
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection("events")}
}

// Create inserts a new event and assigns its id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// List retrieves all events
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}
