package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
)

// DBSecret is the JSON payload stored in Secrets Manager for the
// managed database.
type DBSecret struct {
	Host     string `json:"host"`
	DBName   string `json:"dbname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// FetchDBSecret возвращает реквизиты БД из Secrets Manager.
// In local mode it returns (nil, nil) without touching AWS. There is no
// fallback and no retry: a failed fetch kills startup.
func FetchDBSecret(ctx context.Context, cfg config.Config) (*DBSecret, error) {
	if cfg.IsLocal() {
		logrus.Info("skipping Secrets Manager (local mode)")
		return nil, nil
	}

	if cfg.DBSecretName == "" {
		return nil, fmt.Errorf("DB_SECRET_NAME is empty (required in cloud mode)")
	}

	logrus.WithFields(logrus.Fields{
		"secret": cfg.DBSecretName,
		"region": cfg.AWSRegion,
	}).Info("fetching DB secret from Secrets Manager")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &cfg.DBSecretName,
	})
	if err != nil {
		return nil, fmt.Errorf("get secret value: %w", err)
	}

	var sec DBSecret
	if err := json.Unmarshal([]byte(*out.SecretString), &sec); err != nil {
		return nil, fmt.Errorf("decode secret payload: %w", err)
	}
	logrus.Info("successfully retrieved DB secret")
	return &sec, nil
}
