package services

import (
	"context"
	"fmt"

	"aeroclub-backend/internal/models"
)

// TipStore defines the persistence operations the tip service needs.
type TipStore interface {
	Create(ctx context.Context, tip *models.Tip) error
	List(ctx context.Context) ([]models.Tip, error)
}

// TipService handles member tips
type TipService struct {
	tips TipStore
}

// NewTipService creates a new tip service
func NewTipService(tips TipStore) *TipService {
	return &TipService{tips: tips}
}

// Create persists a new tip
func (s *TipService) Create(ctx context.Context, tip *models.Tip) error {
	if err := s.tips.Create(ctx, tip); err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}
	return nil
}

// List retrieves all tips
func (s *TipService) List(ctx context.Context) ([]models.Tip, error) {
	return s.tips.List(ctx)
}
