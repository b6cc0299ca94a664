package db

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// Store wraps the product table behind the two read operations the
// storefront needs. Query failures are returned to the caller as-is.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListProducts возвращает все товары (пустой срез, если таблица пуста).
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := []models.Product{}
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	logrus.WithField("count", len(items)).Info("products fetched")
	return items, nil
}

// GetProduct возвращает товар по id или nil, если такого нет.
func (s *Store) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("product_id", id).Warn("product not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
