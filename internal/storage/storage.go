package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
)

// Storage is the file backend used for resumes and other uploads.
type Storage interface {
	// Save stores a file at the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a file is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a temporary URL for private files. Backends
	// without signing fall back to the public URL.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the file size in bytes.
	GetSize(ctx context.Context, key string) (int64, error)
}

// NewStorage builds the backend named by the configuration. The
// "cloudflare_r2" type is the S3 driver pointed at an R2 endpoint.
func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "", "local":
		return NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	case "s3", "cloudflare_r2":
		return NewS3Storage(S3Options{
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			AccessKey:  cfg.Storage.AccessKey,
			SecretKey:  cfg.Storage.SecretKey,
			Endpoint:   cfg.Storage.Endpoint,
			BaseURL:    cfg.Storage.BaseURL,
			PublicRead: cfg.Storage.PublicRead,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
