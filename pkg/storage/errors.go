package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	// Configuration errors.
	ErrInvalidConfig = errors.New("storage: invalid configuration")
	ErrInvalidKey    = errors.New("storage: invalid object key")

	// Object errors.
	ErrNotFound         = errors.New("storage: file not found")
	ErrAccessDenied     = errors.New("storage: access denied")
	ErrDownloadFailed   = errors.New("storage: download failed")
	ErrDownloadTooLarge = errors.New("storage: download exceeds size limit")
	ErrBucketCheck      = errors.New("storage: bucket check failed")
)

// wrapS3Error wraps S3 errors with the matching sentinel error.
// The original error is formatted with %v so callers classify with errors.Is
// against sentinels instead of depending on AWS types.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
