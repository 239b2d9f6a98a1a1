package storage

import (
	"context"
	"io"
)

// Downloader fetches whole objects from a bucket.
type Downloader interface {
	// Download returns the object's bytes.
	// Returns ErrNotFound when the object does not exist.
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

// Config holds S3-compatible storage configuration.
// Supabase Storage exposes an S3 endpoint; set Endpoint and PathStyle for it.
type Config struct {
	// Driver selects the implementation: "s3" or "fs".
	Driver string `env:"DRIVER" envDefault:"s3"`

	// AccessKey is the access key ID (required for s3).
	AccessKey string `env:"ACCESS_KEY"`

	// SecretKey is the secret access key (required for s3).
	SecretKey string `env:"SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (Supabase, MinIO).
	Endpoint string `env:"ENDPOINT"`

	// Region is the region (default: us-east-1).
	Region string `env:"REGION" envDefault:"us-east-1"`

	// Root is the directory served by the fs driver; each bucket is a subdirectory.
	Root string `env:"ROOT" envDefault:"./data/storage"`

	// PathStyle enables path-style URLs (required for Supabase and MinIO).
	PathStyle bool `env:"PATH_STYLE" envDefault:"true"`

	// MaxDownloadSize caps object downloads in bytes (default: 25MB).
	MaxDownloadSize int64 `env:"MAX_DOWNLOAD_SIZE" envDefault:"26214400"`
}

// Default configuration values.
const (
	DefaultRegion          = "us-east-1"
	DefaultMaxDownloadSize = 25 << 20 // 25MB, the Gmail attachment limit
)

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxDownloadSize <= 0 {
		c.MaxDownloadSize = DefaultMaxDownloadSize
	}
}

// validate checks that required s3 configuration fields are set.
func (c *Config) validate() error {
	if c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// readLimited reads r fully, failing with ErrDownloadTooLarge past maxSize bytes.
func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, ErrDownloadTooLarge
	}
	return data, nil
}
