package queue

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
)

type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
}

func newSQSPublisher(ctx context.Context, cfg config.Config) (*SQSPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	logrus.WithField("queue", cfg.SQSQueueURL).Info("SQS publishing enabled")
	return &SQSPublisher{client: sqs.NewFromConfig(awsCfg), queueURL: cfg.SQSQueueURL}, nil
}

func (p *SQSPublisher) Publish(ctx context.Context, payload []byte) error {
	body := string(payload)
	_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &p.queueURL,
		MessageBody: &body,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	logrus.Info("order message sent to SQS")
	return nil
}

func (p *SQSPublisher) Enabled() bool { return true }
