package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// Seed — стартовый набор товаров для локальной разработки.
// The ids, prices and image URLs are part of the compatibility contract;
// do not reorder or edit.
var Seed = []models.Product{
	{ID: 1, Name: "Laptop", Description: "High performance laptop", Price: 103000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/laptop.jpg"},
	{ID: 2, Name: "Headphones", Description: "Noise cancelling headphones", Price: 3000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/headphones.jpg"},
	{ID: 3, Name: "Keyboard", Description: "Mechanical RGB keyboard", Price: 4000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/keyboard.jpg"},
	{ID: 4, Name: "Mouse", Description: "Wireless ergonomic mouse", Price: 1200.00, ImageURL: "https://your-bucket.s3.amazonaws.com/mouse.jpg"},
	{ID: 5, Name: "Smartwatch", Description: "Fitness tracking smartwatch", Price: 8090.00, ImageURL: "https://your-bucket.s3.amazonaws.com/smartwatch.jpg"},
	{ID: 6, Name: "Earphones", Description: "High performance laptop", Price: 103000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/laptop.jpg"},
	{ID: 7, Name: "Mobile cable", Description: "Noise cancelling headphones", Price: 3000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/headphones.jpg"},
	{ID: 8, Name: "Mobile Holder", Description: "Mechanical RGB keyboard", Price: 4000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/keyboard.jpg"},
	{ID: 9, Name: "Power Bank", Description: "Mechanical RGB keyboard", Price: 4000.00, ImageURL: "https://your-bucket.s3.amazonaws.com/keyboard.jpg"},
	{ID: 10, Name: "iPhone 7", Description: "Fitness tracking smartwatch", Price: 8090.00, ImageURL: "https://your-bucket.s3.amazonaws.com/smartwatch.jpg"},
}

// Reset пересоздаёт таблицу products и вставляет Seed заново.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Product{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return err
	}
	return db.Create(seedCopy()).Error
}

// Upsert обновляет Seed, не трогая остальные строки.
func Upsert(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "price", "image_url",
		}),
	}).Create(seedCopy()).Error
}

// gorm fills timestamps on the rows it inserts; keep Seed itself intact
func seedCopy() *[]models.Product {
	rows := make([]models.Product, len(Seed))
	copy(rows, Seed)
	return &rows
}
