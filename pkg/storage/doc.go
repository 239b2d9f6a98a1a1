// Package storage downloads job-description files from object storage.
//
// S3Storage talks to any S3-compatible service (AWS, Supabase Storage, MinIO);
// FSStorage serves the same bucket/key layout from a local directory.
// Both implement Downloader:
//
//	store, err := storage.Open(storage.Config{
//		Driver:    "s3",
//		Endpoint:  "https://<project>.supabase.co/storage/v1/s3",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//		PathStyle: true,
//	})
//	data, err := store.Download(ctx, "job-descriptions", "acme/backend.pdf")
//
// Errors are classified with sentinel values (ErrNotFound, ErrAccessDenied,
// ErrDownloadTooLarge, ...) so callers use errors.Is and never AWS types.
package storage
