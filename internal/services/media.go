package services

import (
	"context"
	"fmt"
	"io"

	"aeroclub-backend/internal/models"
	"aeroclub-backend/internal/storage"
)

// MediaStore defines the persistence operations the media service needs.
type MediaStore interface {
	Create(ctx context.Context, media *models.Media) error
	List(ctx context.Context) ([]models.Media, error)
}

// MediaService handles media uploads and listing
type MediaService struct {
	media   MediaStore
	uploads storage.Store
}

// NewMediaService creates a new media service
func NewMediaService(media MediaStore, uploads storage.Store) *MediaService {
	return &MediaService{
		media:   media,
		uploads: uploads,
	}
}

// Upload transfers the file through the upload adapter and persists the
// record with the returned URL. The upload must complete before anything is
// written to the store.
func (s *MediaService) Upload(ctx context.Context, filename string, file io.Reader, media *models.Media) error {
	url, err := s.uploads.Save(ctx, filename, file)
	if err != nil {
		return err
	}
	media.URL = url

	if err := s.media.Create(ctx, media); err != nil {
		return fmt.Errorf("failed to persist media: %w", err)
	}
	return nil
}

// List retrieves all media. The privacy field is advisory metadata only;
// no access control is applied here.
func (s *MediaService) List(ctx context.Context) ([]models.Media, error) {
	return s.media.List(ctx)
}
