package repository

import (
	"context"
	"fmt"

	"aeroclub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository handles document store operations for media
type MediaRepository struct {
	coll *mongo.Collection
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{coll: db.Collection("media")}
}

// Create inserts a new media record and assigns its id. The URL must already
// be populated by the upload adapter.
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, media); err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

// List retrieves all media records, unfiltered
func (r *MediaRepository) List(ctx context.Context) ([]models.Media, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	defer cursor.Close(ctx)

	media := []models.Media{}
	if err := cursor.All(ctx, &media); err != nil {
		return nil, fmt.Errorf("failed to decode media: %w", err)
	}
	return media, nil
}
