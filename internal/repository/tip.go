package repository

import (
	"context"
	"fmt"

	"aeroclub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TipRepository handles document store operations for tips
type TipRepository struct {
	coll *mongo.Collection
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db *mongo.Database) *TipRepository {
	return &TipRepository{coll: db.Collection("tips")}
}

// Create inserts a new tip and assigns its id
func (r *TipRepository) Create(ctx context.Context, tip *models.Tip) error {
	tip.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, tip); err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}
	return nil
}

// List retrieves all tips
func (r *TipRepository) List(ctx context.Context) ([]models.Tip, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	defer cursor.Close(ctx)

	tips := []models.Tip{}
	if err := cursor.All(ctx, &tips); err != nil {
		return nil, fmt.Errorf("failed to decode tips: %w", err)
	}
	return tips, nil
}
