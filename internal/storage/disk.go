package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aeroclub-backend/internal/config"
)

// DiskStore writes uploads to a server-local directory which is served by
// the static file handler under BaseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(cfg config.DiskConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the stream to disk under a timestamp-derived name and returns
// the path it will be served at.
func (s *DiskStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return s.baseURL + "/" + name, nil
}
