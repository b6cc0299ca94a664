package db

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/secrets"
)

// Open открывает соединение с БД: SQLite в local-режиме, MySQL в облаке.
// The returned handle owns the driver's connection pool; callers share it
// for the process lifetime.
func Open(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	if cfg.IsLocal() {
		logrus.WithField("path", cfg.SQLitePath).Info("using SQLite database")
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	}

	logrus.Info("using managed MySQL database (cloud mode)")
	sec, err := secrets.FetchDBSecret(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("fetch db secret: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host": sec.Host,
		"db":   sec.DBName,
		"user": sec.Username,
	}).Info("connecting to MySQL")

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4",
		sec.Username, sec.Password, sec.Host, sec.DBName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}
