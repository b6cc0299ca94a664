package queue

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront/internal/config"
)

// Publisher hands a serialized order to the order queue. One message per
// call, no batching, no retry: if Publish fails the caller aborts.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
	Enabled() bool
}

// New выбирает реализацию один раз на старте процесса.
func New(ctx context.Context, cfg config.Config) (Publisher, error) {
	if cfg.IsLocal() {
		logrus.Info("SQS disabled (local mode)")
		return Disabled{}, nil
	}
	if cfg.SQSQueueURL == "" {
		logrus.Warn("SQS_QUEUE_URL not set, queue publish disabled")
		return Disabled{}, nil
	}
	return newSQSPublisher(ctx, cfg)
}

// Disabled drops payloads on the floor; Enabled lets checkout report
// that no message was sent.
type Disabled struct{}

func (Disabled) Publish(ctx context.Context, payload []byte) error { return nil }

func (Disabled) Enabled() bool { return false }
