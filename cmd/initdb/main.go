package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/db"
)

// initdb создаёт локальную SQLite-базу и заливает стартовые товары.
// Cloud mode is provisioned elsewhere; this utility refuses to run there.
func main() {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := config.Load()
	if !cfg.IsLocal() {
		logrus.Info("skipping initdb: APP_ENV is not local")
		return
	}

	logrus.WithField("path", cfg.SQLitePath).Info("initializing SQLite local database")
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		logrus.Fatalf("create data dir: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("open sqlite: %v", err)
	}

	if cfg.ResetDB {
		logrus.Warn("RESET_DB set, dropping and reseeding products table")
		err = db.Reset(gdb)
	} else {
		logrus.Info("upserting seed products without dropping")
		err = db.Upsert(gdb)
	}
	if err != nil {
		logrus.Fatalf("seed: %v", err)
	}

	logrus.WithField("products", len(db.Seed)).Info("SQLite DB initialized")
}
