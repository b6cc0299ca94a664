package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/queue"
	"storefront/internal/storage"
	"storefront/internal/web"
)

func main() {
	// .env из текущей папки, родительской и корня репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	logrus.WithField("env", cfg.AppEnv).Info("application starting")

	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		logrus.Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()

	files, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("object storage: %v", err)
	}
	orders, err := queue.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("order queue: %v", err)
	}

	srv := web.NewServer(db.NewStore(gdb), files, orders, cfg.SessionSecret)
	srv.Engine().Static("/static", "./static")

	logrus.Info("server listening on :" + cfg.AppPort)
	if err := srv.Engine().Run(":" + cfg.AppPort); err != nil {
		logrus.Fatal(err)
	}
}
