package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// FSStorage implements Downloader over a directory tree where every bucket
// is a top-level directory. Used for local development and tests.
type FSStorage struct {
	fsys    fs.FS
	maxSize int64
}

// NewFS serves buckets from the directory at root.
func NewFS(root string, maxSize int64) *FSStorage {
	return NewFSFromFS(os.DirFS(root), maxSize)
}

// NewFSFromFS serves buckets from an arbitrary fs.FS.
func NewFSFromFS(fsys fs.FS, maxSize int64) *FSStorage {
	if maxSize <= 0 {
		maxSize = DefaultMaxDownloadSize
	}
	return &FSStorage{fsys: fsys, maxSize: maxSize}
}

// Download implements Downloader.
func (s *FSStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	if bucket == "" || !fs.ValidPath(bucket) || !fs.ValidPath(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, path.Join(bucket, key))
	}
	name := path.Join(bucket, key)

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer f.Close()

	data, err := readLimited(f, s.maxSize)
	if err != nil {
		if errors.Is(err, ErrDownloadTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return data, nil
}

var _ Downloader = (*FSStorage)(nil)

// Open builds the Downloader selected by cfg.Driver.
func Open(cfg Config) (Downloader, error) {
	cfg.applyDefaults()
	switch cfg.Driver {
	case "", "s3":
		return New(cfg)
	case "fs":
		return NewFS(cfg.Root, cfg.MaxDownloadSize), nil
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}
