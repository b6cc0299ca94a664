package config

import (
	"os"
	"strings"
)

// Config holds everything the serving process and the initializer read
// from the environment. Loaded once at startup.
type Config struct {
	AppEnv        string // "local" or anything else = cloud
	SQLitePath    string
	DBSecretName  string
	AWSRegion     string
	S3Bucket      string
	SQSQueueURL   string
	ResetDB       bool
	AppPort       string
	SessionSecret string
}

func Load() Config {
	return Config{
		AppEnv:        getenv("APP_ENV", "local"),
		SQLitePath:    getenv("SQLITE_DB_PATH", "/app/data/local.db"),
		DBSecretName:  os.Getenv("DB_SECRET_NAME"),
		AWSRegion:     getenv("AWS_REGION", "ap-south-1"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		SQSQueueURL:   os.Getenv("SQS_QUEUE_URL"),
		ResetDB:       truthy(getenv("RESET_DB", "true")),
		AppPort:       getenv("APP_PORT", "8080"),
		SessionSecret: getenv("SESSION_SECRET", "dev_fallback_secret"),
	}
}

// IsLocal reports whether the process runs against the embedded SQLite
// store with all cloud integrations disabled.
func (c Config) IsLocal() bool {
	return c.AppEnv == "local"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1":
		return true
	}
	return false
}
