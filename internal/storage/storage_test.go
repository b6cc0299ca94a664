package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestNewDisabledInLocalMode(t *testing.T) {
	s, err := New(context.Background(), config.Config{AppEnv: "local", S3Bucket: "some-bucket"})
	require.NoError(t, err)
	require.False(t, s.Enabled())
}

func TestNewDisabledWithoutBucket(t *testing.T) {
	s, err := New(context.Background(), config.Config{AppEnv: "aws"})
	require.NoError(t, err)
	require.False(t, s.Enabled())
}
