package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"aeroclub-backend/internal/config"
)

// ErrUpload indicates the underlying write or transfer failed.
var ErrUpload = errors.New("upload failed")

// Store writes an uploaded byte stream somewhere retrievable and returns a
// dereferenceable URL for it. The two implementations (local disk, S3) are
// interchangeable from the route layer's perspective.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// New selects a storage backend from configuration.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "disk":
		return NewDiskStore(cfg.Disk)
	case "s3":
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
