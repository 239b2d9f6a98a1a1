package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Downloader using S3-compatible object storage.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New creates a new S3Storage with the given configuration.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)
	return &S3Storage{client: client, cfg: cfg}, nil
}

// Get opens an object for reading.
// The caller is responsible for closing the returned reader.
func (s *S3Storage) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrDownloadFailed)
	}

	if output.ContentLength != nil && *output.ContentLength > s.cfg.MaxDownloadSize {
		_ = output.Body.Close()
		return nil, ErrDownloadTooLarge
	}

	return output.Body, nil
}

// Download implements Downloader.
func (s *S3Storage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	body, err := s.Get(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := readLimited(body, s.cfg.MaxDownloadSize)
	if err != nil {
		if errors.Is(err, ErrDownloadTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return data, nil
}

// Healthcheck returns a check that verifies the bucket is reachable.
func (s *S3Storage) Healthcheck(bucket string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		if err != nil {
			return wrapS3Error(err, ErrBucketCheck)
		}
		return nil
	}
}

// cleanKey strips leading slashes; JD references are stored both with and without them.
func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	return key, nil
}

var _ Downloader = (*S3Storage)(nil)
