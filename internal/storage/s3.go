package storage

import (
	"context"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
)

// S3Store uploads into a single bucket and derives the public URL from
// the bucket name. Same key — silent overwrite.
type S3Store struct {
	client *s3.Client
	bucket string
}

func newS3Store(ctx context.Context, cfg config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	logrus.WithField("bucket", cfg.S3Bucket).Info("S3 uploads enabled")
	return &S3Store{client: s3.NewFromConfig(awsCfg), bucket: cfg.S3Bucket}, nil
}

func (s *S3Store) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	key := SanitizeFilename(filename)
	if key == "" {
		return "", nil
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	logrus.WithField("url", url).Info("file uploaded to S3")
	return url, nil
}

func (s *S3Store) Enabled() bool { return true }
