package storage

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"storefront/internal/config"
)

// ObjectStore uploads a file stream under a chosen name and returns the
// public URL. The disabled implementation is used in local mode and when
// no bucket is configured.
type ObjectStore interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
	Enabled() bool
}

// New выбирает реализацию один раз на старте процесса.
func New(ctx context.Context, cfg config.Config) (ObjectStore, error) {
	if cfg.IsLocal() {
		logrus.Info("S3 disabled (local mode)")
		return Disabled{}, nil
	}
	if cfg.S3Bucket == "" {
		logrus.Warn("S3_BUCKET not set, uploads disabled")
		return Disabled{}, nil
	}
	return newS3Store(ctx, cfg)
}

// Disabled is the no-op object store. Upload reports no URL and no error
// so checkout can proceed without a file trace.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	return "", nil
}

func (Disabled) Enabled() bool { return false }
