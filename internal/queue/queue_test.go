package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestNewDisabledInLocalMode(t *testing.T) {
	p, err := New(context.Background(), config.Config{AppEnv: "local", SQSQueueURL: "https://sqs/queue"})
	require.NoError(t, err)
	require.False(t, p.Enabled())
	require.NoError(t, p.Publish(context.Background(), []byte(`{}`)))
}

func TestNewDisabledWithoutQueueURL(t *testing.T) {
	p, err := New(context.Background(), config.Config{AppEnv: "aws"})
	require.NoError(t, err)
	require.False(t, p.Enabled())
}
